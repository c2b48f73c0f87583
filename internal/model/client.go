package model

// Client is a freight customer of the organization.
type Client struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	ContactPerson       *string `json:"contact_person,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Email               *string `json:"email,omitempty"`
	CEP                 *string `json:"cep,omitempty"`
	AddressStreet       *string `json:"address_street,omitempty"`
	AddressNumber       *string `json:"address_number,omitempty"`
	AddressNeighborhood *string `json:"address_neighborhood,omitempty"`
	AddressCity         *string `json:"address_city,omitempty"`
	AddressState        *string `json:"address_state,omitempty"`
}

// ClientCreate is the payload for POST /clients/.
type ClientCreate struct {
	Name                string  `json:"name"`
	ContactPerson       *string `json:"contact_person,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Email               *string `json:"email,omitempty"`
	CEP                 *string `json:"cep,omitempty"`
	AddressStreet       *string `json:"address_street,omitempty"`
	AddressNumber       *string `json:"address_number,omitempty"`
	AddressNeighborhood *string `json:"address_neighborhood,omitempty"`
	AddressCity         *string `json:"address_city,omitempty"`
	AddressState        *string `json:"address_state,omitempty"`
}
