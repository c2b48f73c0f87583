package model

// MaintenanceStatus is the server-side request state machine. Illegal
// transitions are rejected by the server with a 4xx; the client only
// reflects whatever status the server returns.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "PENDENTE"
	MaintenanceApproved   MaintenanceStatus = "APROVADA"
	MaintenanceRejected   MaintenanceStatus = "REJEITADA"
	MaintenanceInProgress MaintenanceStatus = "EM ANDAMENTO"
	MaintenanceCompleted  MaintenanceStatus = "CONCLUIDA"
)

// MaintenanceCategory classifies the reported problem.
type MaintenanceCategory string

const (
	MaintenanceMechanical MaintenanceCategory = "Mecânica"
	MaintenanceElectrical MaintenanceCategory = "Elétrica"
	MaintenanceBodywork   MaintenanceCategory = "Funilaria"
	MaintenanceOther      MaintenanceCategory = "Outro"
)

// MaintenanceComment is one entry of a request's ordered comment thread.
type MaintenanceComment struct {
	ID          int64   `json:"id"`
	CommentText string  `json:"comment_text"`
	FileURL     *string `json:"file_url"`
	CreatedAt   string  `json:"created_at"`
	User        User    `json:"user"`
}

// MaintenanceRequest mirrors a maintenance request with its thread.
type MaintenanceRequest struct {
	ID                 int64                `json:"id"`
	ProblemDescription string               `json:"problem_description"`
	Status             MaintenanceStatus    `json:"status"`
	Category           MaintenanceCategory  `json:"category"`
	Reporter           User                 `json:"reporter"`
	Vehicle            Vehicle              `json:"vehicle"`
	Approver           *User                `json:"approver"`
	ManagerNotes       *string              `json:"manager_notes"`
	CreatedAt          string               `json:"created_at"`
	UpdatedAt          *string              `json:"updated_at"`
	Comments           []MaintenanceComment `json:"comments"`
}

// MaintenanceRequestCreate is the payload for POST /maintenance/.
type MaintenanceRequestCreate struct {
	VehicleID          int64               `json:"vehicle_id"`
	ProblemDescription string              `json:"problem_description"`
	Category           MaintenanceCategory `json:"category"`
}

// MaintenanceRequestUpdate requests a status transition.
type MaintenanceRequestUpdate struct {
	Status       MaintenanceStatus `json:"status"`
	ManagerNotes *string           `json:"manager_notes,omitempty"`
}

// MaintenanceCommentCreate is the payload for POST
// /maintenance/{id}/comments.
type MaintenanceCommentCreate struct {
	CommentText string  `json:"comment_text"`
	FileURL     *string `json:"file_url,omitempty"`
}
