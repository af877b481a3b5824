package posts

import "time"

// Post is a unit of forum content as stored in the posts file. The JSON
// field names are part of the wire and storage format consumed by the
// frontend, so they must not change.
type Post struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Msg     string `json:"msg"`
	Replies []Post `json:"replies"`
}

// NewPost carries the client-submitted fields of a post-create request.
// Parent identifies the post being replied to; replying is not implemented
// yet and a non-empty Parent is rejected explicitly.
type NewPost struct {
	Date   string `json:"date"`
	Title  string `json:"title"`
	Msg    string `json:"msg"`
	Parent string `json:"parent,omitempty"`
}

// dateLayouts are the timestamp formats accepted from the frontend. The
// raw string is stored as received; parsing is only used to reject values
// that are not valid dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// validDate reports whether s parses as a calendar date/time under one of
// the accepted layouts.
func validDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
