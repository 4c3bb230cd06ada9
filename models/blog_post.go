package models

// BlogPost is an article authored in the back-office. Date is free text
// and Content is rich HTML produced by the admin editor widget.
type BlogPost struct {
	ID      string   `json:"id" validate:"required"`
	Title   string   `json:"title" validate:"required"`
	Author  string   `json:"author"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
	Image   string   `json:"image"`
	Content string   `json:"content"`
}
