package dto

// DeletePostResp reports a completed delete. StorageErrors lists images that
// could not be removed; the post itself is gone regardless.
type DeletePostResp struct {
	Deleted         bool     `json:"deleted"`
	CommentsDeleted int64    `json:"comments_deleted"`
	VotesDeleted    int64    `json:"votes_deleted"`
	ObjectsRemoved  []string `json:"objects_removed"`
	StorageErrors   []string `json:"storage_errors,omitempty"`
}

// CreatePostForm documents the multipart fields of POST /posts.
type CreatePostForm struct {
	Name              string `form:"name" example:"Rex"`
	Content           string `form:"content" example:"Friendly two year old retriever"`
	Age               *int   `form:"age" example:"24"`
	Breed             string `form:"breed" example:"Golden Retriever"`
	Location          string `form:"location" example:"Oslo"`
	Size              string `form:"size" enums:"Small,Medium,Large,Extra Large"`
	Temperament       string `form:"temperament" example:"calm,playful"`
	HealthInfo        string `form:"health_info"`
	VaccinationStatus *bool  `form:"vaccination_status"`
	Status            string `form:"status" enums:"Available,Pending,Adopted"`
	CommunityID       string `form:"community_id"`
}
