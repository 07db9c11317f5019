package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/s0up4200/stravactl/strava"
)

var (
	uploadType     string
	uploadName     string
	uploadDesc     string
	uploadExtID    string
	uploadTrainer  bool
	uploadCommute  bool
	uploadWait     bool
	uploadInterval time.Duration
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a FIT, TCX or GPX activity file",
	Long: `Upload an activity file. The data type is taken from the file extension
unless --type is given; gzip-compressed files (.fit.gz, .tcx.gz, .gpx.gz) are
sent as they are. With --wait the command polls until Strava has processed
the upload.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVar(&uploadType, "type", "", "data type: fit, fit.gz, tcx, tcx.gz, gpx or gpx.gz")
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "activity name")
	uploadCmd.Flags().StringVar(&uploadDesc, "description", "", "activity description")
	uploadCmd.Flags().StringVar(&uploadExtID, "external-id", "", "identifier for duplicate detection (default: random UUID)")
	uploadCmd.Flags().BoolVar(&uploadTrainer, "trainer", false, "mark as indoor trainer activity")
	uploadCmd.Flags().BoolVar(&uploadCommute, "commute", false, "mark as commute")
	uploadCmd.Flags().BoolVar(&uploadWait, "wait", false, "wait until processing finishes")
	uploadCmd.Flags().DurationVar(&uploadInterval, "poll-interval", 2*time.Second, "status polling interval with --wait")
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	dataType := strava.UploadDataType(strings.ToLower(uploadType))
	if uploadType == "" {
		var err error
		if dataType, err = strava.DataTypeFromFilename(path); err != nil {
			return fmt.Errorf("%w; pass --type", err)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := requireAuth(ctx); err != nil {
		return err
	}

	externalID := uploadExtID
	if externalID == "" {
		externalID = uuid.NewString()
	}
	params := strava.UploadParams{
		DataType:   dataType,
		ExternalID: &externalID,
		Trainer:    uploadTrainer,
		Commute:    uploadCommute,
		FileName:   filepath.Base(path),
		File:       file,
	}
	if uploadName != "" {
		params.Name = &uploadName
	}
	if uploadDesc != "" {
		params.Description = &uploadDesc
	}

	logger.Info().Str("file", path).Str("data_type", string(dataType)).Str("external_id", externalID).Msg("Uploading activity")
	status, err := client.UploadActivity(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to upload: %w", err)
	}

	formatter := newConsoleFormatter()
	for uploadWait && status.Processing() {
		fmt.Println(formatter.FormatUploadStatus(status))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(uploadInterval):
		}
		if status, err = client.CheckUploadStatus(ctx, status.ID); err != nil {
			return fmt.Errorf("failed to check upload status: %w", err)
		}
	}

	fmt.Println(formatter.FormatUploadStatus(status))
	if status.Failed() {
		return fmt.Errorf("upload %d was rejected", status.ID)
	}
	return nil
}
