package dto

// UpdateProfileReq changes only the fields present in the body.
type UpdateProfileReq struct {
	Bio       *string   `json:"bio,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Favorites *[]string `json:"favorites,omitempty"`
}
