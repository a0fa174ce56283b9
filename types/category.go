package types

type CategoryRequest struct {
	Name string `json:"name" form:"name"`
}

type CategoryItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}
