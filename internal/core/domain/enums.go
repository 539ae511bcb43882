package domain

// Enum values match the strings persisted in the database. Display names
// are the pt-BR labels shown by the admin and the public site.

type PropertyType string

const (
	TypeApartment      PropertyType = "apartamento"
	TypeHouse          PropertyType = "casa"
	TypeTownhouse      PropertyType = "sobrado"
	TypeStudio         PropertyType = "kitnet"
	TypeLoft           PropertyType = "loft"
	TypeCommercialRoom PropertyType = "sala_comercial"
	TypeLand           PropertyType = "terreno"
	TypeCountryHouse   PropertyType = "chacara"
	TypeWarehouse      PropertyType = "galpao"
)

var PropertyTypeLabels = map[PropertyType]string{
	TypeApartment:      "Apartamento",
	TypeHouse:          "Casa",
	TypeTownhouse:      "Sobrado",
	TypeStudio:         "Kitnet",
	TypeLoft:           "Loft",
	TypeCommercialRoom: "Sala Comercial",
	TypeLand:           "Terreno",
	TypeCountryHouse:   "Chácara",
	TypeWarehouse:      "Galpão",
}

// PropertyTypes lists every type in a stable order, for dictionaries.
var PropertyTypes = []PropertyType{
	TypeApartment, TypeHouse, TypeTownhouse, TypeStudio, TypeLoft,
	TypeCommercialRoom, TypeLand, TypeCountryHouse, TypeWarehouse,
}

type PropertyStatus string

const (
	StatusActive   PropertyStatus = "ativo"
	StatusSold     PropertyStatus = "vendido"
	StatusRented   PropertyStatus = "alugado"
	StatusReserved PropertyStatus = "reservado"
	StatusInactive PropertyStatus = "inativo"
)

var PropertyStatusLabels = map[PropertyStatus]string{
	StatusActive:   "Ativo",
	StatusSold:     "Vendido",
	StatusRented:   "Alugado",
	StatusReserved: "Reservado",
	StatusInactive: "Inativo",
}

type Furnishing string

const (
	FurnishingFurnished     Furnishing = "mobiliado"
	FurnishingSemiFurnished Furnishing = "semimobiliado"
	FurnishingEmpty         Furnishing = "vazio"
)

var FurnishingLabels = map[Furnishing]string{
	FurnishingFurnished:     "Mobiliado",
	FurnishingSemiFurnished: "Semimobiliado",
	FurnishingEmpty:         "Vazio",
}

// Purpose is the transaction type a price row applies to.
type Purpose string

const (
	PurposeSale     Purpose = "venda"
	PurposeRent     Purpose = "aluguel"
	PurposeSeasonal Purpose = "temporada"
)

var PurposeLabels = map[Purpose]string{
	PurposeSale:     "Venda",
	PurposeRent:     "Aluguel",
	PurposeSeasonal: "Temporada",
}

var Purposes = []Purpose{PurposeSale, PurposeRent, PurposeSeasonal}

type ClientStatus string

const (
	ClientColdLead   ClientStatus = "lead_frio"
	ClientWarmLead   ClientStatus = "lead_morno"
	ClientHotLead    ClientStatus = "lead_quente"
	ClientActive     ClientStatus = "cliente_ativo"
	ClientLost       ClientStatus = "cliente_perdido"
	ClientClosedDeal ClientStatus = "cliente_finalizado"
)

var ClientStatusLabels = map[ClientStatus]string{
	ClientColdLead:   "Lead Frio",
	ClientWarmLead:   "Lead Morno",
	ClientHotLead:    "Lead Quente",
	ClientActive:     "Cliente Ativo",
	ClientLost:       "Cliente Perdido",
	ClientClosedDeal: "Negócio Finalizado",
}

type ContactOrigin string

const (
	OriginSite      ContactOrigin = "site"
	OriginWhatsApp  ContactOrigin = "whatsapp"
	OriginPhone     ContactOrigin = "telefone"
	OriginEmail     ContactOrigin = "email"
	OriginReferral  ContactOrigin = "indicacao"
	OriginFacebook  ContactOrigin = "facebook"
	OriginInstagram ContactOrigin = "instagram"
	OriginSign      ContactOrigin = "placa"
	OriginOther     ContactOrigin = "outro"
)

var ContactOriginLabels = map[ContactOrigin]string{
	OriginSite:      "Site",
	OriginWhatsApp:  "WhatsApp",
	OriginPhone:     "Telefone",
	OriginEmail:     "E-mail",
	OriginReferral:  "Indicação",
	OriginFacebook:  "Facebook",
	OriginInstagram: "Instagram",
	OriginSign:      "Placa",
	OriginOther:     "Outro",
}

// InterestPurposeLabels covers what a lead is looking for. It allows the
// combined sale-or-rent value that plain price purposes do not have.
var InterestPurposeLabels = map[string]string{
	"venda":         "Comprar",
	"aluguel":       "Alugar",
	"temporada":     "Temporada",
	"venda_aluguel": "Comprar ou Alugar",
}
