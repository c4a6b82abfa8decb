package image

// Model for a sprite image reference, shared by champions, spells and items.
type Image struct {
	Full   string `json:"full"`
	Sprite string `json:"sprite,omitempty"`
	Group  string `json:"group,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	W      int    `json:"w,omitempty"`
	H      int    `json:"h,omitempty"`
}

// URL joins the image file name to a versioned image base.
// Returns an empty string when there is no file to point to.
func (i Image) URL(base string) string {
	if i.Full == "" {
		return ""
	}
	return base + i.Full
}
