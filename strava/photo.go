package strava

// Photo attached to an activity, uploaded to Strava or linked from Instagram.
type Photo struct {
	ID         int64             `json:"id"`
	UniqueID   *string           `json:"unique_id,omitempty"`
	ActivityID int64             `json:"activity_id"`
	URLs       map[string]string `json:"urls,omitempty"`
	Caption    *string           `json:"caption,omitempty"`
	Source     *PhotoSource      `json:"source,omitempty"`
	Type       *string           `json:"type,omitempty"`
	UploadedAt *Time             `json:"uploaded_at,omitempty"`
	CreatedAt  *Time             `json:"created_at,omitempty"`
	Location   *Coordinate       `json:"location,omitempty"`
	Ref        *string           `json:"ref,omitempty"`
	UID        *string           `json:"uid,omitempty"`

	ResourceState ResourceState `json:"resource_state"`
}

// PrimaryPhoto is the cover photo of an activity.
type PrimaryPhoto struct {
	ID       *int64            `json:"id,omitempty"`
	Source   *PhotoSource      `json:"source,omitempty"`
	UniqueID *string           `json:"unique_id,omitempty"`
	URLs     map[string]string `json:"urls,omitempty"`
}

// PhotoSummary counts an activity's photos.
type PhotoSummary struct {
	Count   int           `json:"count"`
	Primary *PrimaryPhoto `json:"primary,omitempty"`
}
