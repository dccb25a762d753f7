package profile

// Profile is the public projection of an expert account. Company accounts
// have no profile.
type Profile struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Region       string `json:"region"`
	Focus        string `json:"focus"`
	Availability string `json:"availability"`
	ResponseTime string `json:"responseTime"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	Bio          string `json:"bio"`
}

// UpdateRequest is the payload for PATCH /api/profile/:email. Only fields
// present in the request are merged; absent fields keep their current value.
type UpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	Title        *string `json:"title,omitempty"`
	Region       *string `json:"region,omitempty"`
	Focus        *string `json:"focus,omitempty"`
	Availability *string `json:"availability,omitempty"`
	ResponseTime *string `json:"responseTime,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Website      *string `json:"website,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}
