package dto

type CreateCommunityReq struct {
	Name        string `json:"name" example:"Husky owners"`
	Description string `json:"description,omitempty"`
}
