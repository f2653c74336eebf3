package comment

type CreateCommentRequest struct {
	Text                 string `json:"text" binding:"required"`
	VisibleToEmployee    *bool  `json:"visibleToEmployee"`
	VisibleToProjectHead *bool  `json:"visibleToProjectHead"`
}

type CommentResponse struct {
	ID                   string `json:"id"`
	AuthorID             string `json:"authorId"`
	AuthorName           string `json:"authorName"`
	AuthorRole           string `json:"authorRole"`
	Text                 string `json:"text"`
	VisibleToEmployee    bool   `json:"visibleToEmployee"`
	VisibleToProjectHead bool   `json:"visibleToProjectHead"`
	CreatedAt            string `json:"createdAt"`
}
