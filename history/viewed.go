package history

import (
	"fmt"
	"time"

	"github.com/cinebox-cli/cinebox/media"
)

// Viewed is a title together with when its details were last opened.
type Viewed struct {
	media.Item
	ViewedAt time.Time `json:"viewed_at"`
	Views    int       `json:"views"`
}

func (v *Viewed) String() string {
	if year := v.Year(); year != "" {
		return fmt.Sprintf("%s (%s)", v.Title, year)
	}
	return v.Title
}

func newViewed(item media.Item, at time.Time) *Viewed {
	return &Viewed{
		Item:     item,
		ViewedAt: at,
		Views:    1,
	}
}
