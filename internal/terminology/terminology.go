// Package terminology resolves an organization's business sector to the
// display vocabulary its users expect: what a "vehicle" is called, what
// a "journey" is called, and whether distance is measured in kilometers
// or engine hours. Strategies are a fixed variant-keyed table; an
// absent or unrecognized sector falls back to the services bundle.
package terminology

import "sync"

// Sector is the organization's business-sector classification, in the
// server's vocabulary.
type Sector string

const (
	SectorAgro         Sector = "agronegocio"
	SectorFreight      Sector = "frete"
	SectorServices     Sector = "servicos"
	SectorConstruction Sector = "construcao_civil"
)

// Strategy is the display-string bundle for one sector.
type Strategy struct {
	VehicleNoun                string
	VehicleNounPlural          string
	JourneyNoun                string
	JourneyNounPlural          string
	DistanceUnit               string
	PlateOrIdentifierLabel     string
	StartJourneyButtonLabel    string
	VehiclePageTitle           string
	AddVehicleButtonLabel      string
	EditButtonLabel            string
	NewButtonLabel             string
	JourneyPageTitle           string
	JourneyHistoryTitle        string
	JourneyStartSuccessMessage string
	JourneyEndSuccessMessage   string
	OdometerLabel              string
}

// UsesEngineHours reports whether the sector measures usage in engine
// hours rather than kilometers.
func (s Strategy) UsesEngineHours() bool {
	return s.DistanceUnit == agro.DistanceUnit || s.DistanceUnit == construction.DistanceUnit
}

var agro = Strategy{
	VehicleNoun:                "Maquinário",
	VehicleNounPlural:          "Maquinário",
	JourneyNoun:                "Operação",
	JourneyNounPlural:          "Operações",
	DistanceUnit:               "Horas",
	PlateOrIdentifierLabel:     "Identificador",
	StartJourneyButtonLabel:    "Iniciar Operação",
	VehiclePageTitle:           "Gerenciamento de Maquinário",
	AddVehicleButtonLabel:      "Adicionar Maquinário",
	EditButtonLabel:            "Editar Maquinário",
	NewButtonLabel:             "Novo Maquinário",
	JourneyPageTitle:           "Registro de Operações",
	JourneyHistoryTitle:        "Histórico de Operações",
	JourneyStartSuccessMessage: "Operação iniciada com sucesso!",
	JourneyEndSuccessMessage:   "Operação finalizada com sucesso!",
	OdometerLabel:              "Horímetro (Horas)",
}

var freight = Strategy{
	VehicleNoun:                "Veículo",
	VehicleNounPlural:          "Veículos",
	JourneyNoun:                "Frete",
	JourneyNounPlural:          "Fretes",
	DistanceUnit:               "km",
	PlateOrIdentifierLabel:     "Placa",
	StartJourneyButtonLabel:    "Iniciar Novo Frete",
	VehiclePageTitle:           "Gerenciamento de Frota",
	AddVehicleButtonLabel:      "Adicionar Veículo",
	EditButtonLabel:            "Editar Veículo",
	NewButtonLabel:             "Novo Veículo",
	JourneyPageTitle:           "Gestão de Fretes",
	JourneyHistoryTitle:        "Histórico de Fretes",
	JourneyStartSuccessMessage: "Frete iniciado com sucesso!",
	JourneyEndSuccessMessage:   "Frete finalizado com sucesso!",
	OdometerLabel:              "Odômetro (KM)",
}

var services = Strategy{
	VehicleNoun:                "Veículo",
	VehicleNounPlural:          "Veículos",
	JourneyNoun:                "Viagem",
	JourneyNounPlural:          "Viagens",
	DistanceUnit:               "KM",
	PlateOrIdentifierLabel:     "Placa",
	StartJourneyButtonLabel:    "Iniciar Viagem",
	VehiclePageTitle:           "Gerenciamento de Veículos",
	AddVehicleButtonLabel:      "Adicionar Veículo",
	EditButtonLabel:            "Editar Veículo",
	NewButtonLabel:             "Novo Veículo",
	JourneyPageTitle:           "Registro de Viagens",
	JourneyHistoryTitle:        "Histórico de Viagens",
	JourneyStartSuccessMessage: "Operação iniciada com sucesso!",
	JourneyEndSuccessMessage:   "Operação finalizada com sucesso!",
	OdometerLabel:              "Odômetro (KM)",
}

var construction = Strategy{
	VehicleNoun:                "Equipamento",
	VehicleNounPlural:          "Equipamentos",
	JourneyNoun:                "Tarefa",
	JourneyNounPlural:          "Tarefas",
	DistanceUnit:               "Horas de Uso",
	PlateOrIdentifierLabel:     "Identificador",
	StartJourneyButtonLabel:    "Iniciar Tarefa",
	VehiclePageTitle:           "Gerenciamento de Equipamentos",
	AddVehicleButtonLabel:      "Adicionar Equipamento",
	EditButtonLabel:            "Editar Equipamento",
	NewButtonLabel:             "Novo Equipamento",
	JourneyPageTitle:           "Registro de Tarefas",
	JourneyHistoryTitle:        "Histórico de Tarefas",
	JourneyStartSuccessMessage: "Tarefa iniciada com sucesso!",
	JourneyEndSuccessMessage:   "Tarefa finalizada com sucesso!",
	OdometerLabel:              "Horímetro (Horas)",
}

var strategies = map[Sector]Strategy{
	SectorAgro:         agro,
	SectorFreight:      freight,
	SectorServices:     services,
	SectorConstruction: construction,
}

// Resolve returns the strategy for sector, defaulting to services for
// an empty or unknown value.
func Resolve(sector Sector) Strategy {
	if strategy, ok := strategies[sector]; ok {
		return strategy
	}
	return services
}

// Resolver tracks the current organization's sector so consumers can
// ask for the active strategy without threading the sector everywhere.
type Resolver struct {
	mu     sync.RWMutex
	sector Sector
}

// SetSector records the active sector. Called by the session layer on
// login, restore, and impersonation swap.
func (r *Resolver) SetSector(sector Sector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sector = sector
}

// Sector returns the current sector value.
func (r *Resolver) Sector() Sector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sector
}

// Active returns the strategy for the current sector.
func (r *Resolver) Active() Strategy {
	return Resolve(r.Sector())
}
