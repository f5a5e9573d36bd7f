package models

type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"` // coarse relative label, e.g. "Just now"
	Read    bool   `json:"read"`
}
