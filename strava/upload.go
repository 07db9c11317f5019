package strava

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// Status messages reported while an upload is processed.
const (
	UploadStatusProcessing = "Your activity is still being processed."
	UploadStatusDeleted    = "The created activity has been deleted."
	UploadStatusError      = "There was an error processing your activity."
	UploadStatusReady      = "Your activity is ready."
)

// UploadStatus tracks a file upload until it becomes an activity.
type UploadStatus struct {
	ID         int64   `json:"id"`
	IDStr      string  `json:"id_str"`
	ExternalID *string `json:"external_id,omitempty"`
	Error      *string `json:"error,omitempty"`
	Status     string  `json:"status"`
	ActivityID *int64  `json:"activity_id,omitempty"`
}

// Processing reports whether Strava is still working on the file.
func (u UploadStatus) Processing() bool {
	return !u.Failed() && !u.Ready()
}

// Ready reports whether the upload produced an activity.
func (u UploadStatus) Ready() bool {
	return (u.ActivityID != nil && *u.ActivityID != 0) || u.Status == UploadStatusReady
}

// Failed reports whether processing stopped with an error.
func (u UploadStatus) Failed() bool {
	if u.Error != nil && *u.Error != "" {
		return true
	}
	return u.Status == UploadStatusError || u.Status == UploadStatusDeleted
}

// UploadParams describes an activity file upload.
type UploadParams struct {
	DataType    UploadDataType
	ExternalID  *string
	Name        *string
	Description *string
	Trainer     bool
	Commute     bool
	FileName    string
	File        io.Reader
}

// DataTypeFromFilename guesses the upload data type from a file extension,
// e.g. "morning.gpx.gz".
func DataTypeFromFilename(name string) (UploadDataType, error) {
	lower := strings.ToLower(filepath.Base(name))
	for _, dt := range uploadDataTypes {
		if strings.HasSuffix(lower, "."+string(dt)) {
			return dt, nil
		}
	}
	return "", fmt.Errorf("cannot infer data type of %q", name)
}

// UploadActivity uploads an activity file as multipart form data. The file is
// sent as-is, compressed variants included.
func (c *Client) UploadActivity(ctx context.Context, params UploadParams) (*UploadStatus, error) {
	if !params.DataType.Known() {
		return nil, &Error{Kind: KindConfiguration, Message: fmt.Sprintf("unsupported data type %q", params.DataType), Err: ErrParameterMissing}
	}
	if params.File == nil {
		return nil, missingParameter("file")
	}

	req, err := c.authed(http.MethodPost, "/uploads")
	if err != nil {
		return nil, err
	}
	filename := params.FileName
	if filename == "" {
		filename = "activity." + string(params.DataType)
	}
	req.AddParam("data_type", params.DataType).
		AddParam("external_id", params.ExternalID).
		AddParam("name", params.Name).
		AddParam("description", params.Description).
		AddParam("trainer", flag(&params.Trainer)).
		AddParam("commute", flag(&params.Commute)).
		AttachFile("file", filename, params.DataType.ContentType(), params.File)
	return Object[UploadStatus](ctx, c.dispatcher, req).Get()
}

func (c *Client) CheckUploadStatus(ctx context.Context, uploadID int64) (*UploadStatus, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/uploads/%d", uploadID))
	if err != nil {
		return nil, err
	}
	return Object[UploadStatus](ctx, c.dispatcher, req).Get()
}
