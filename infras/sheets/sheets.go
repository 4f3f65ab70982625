package sheets

import (
	"context"
	"fmt"
	"os"
	"westwood/config"
	"westwood/infras/otel"
	"westwood/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsAPI "google.golang.org/api/sheets/v4"
)

// Column span of the booking sheet. Rows start at 2, row 1 is the header.
const (
	dataRange    = "!A2:Z"
	firstDataRow = 2
)

// Client wraps the Google Sheets API for the booking spreadsheet.
type Client struct {
	service       *sheetsAPI.Service
	spreadsheetID string
	sheetName     string
	otel          otel.Otel
}

// New builds the Sheets client from service-account credentials. When the
// booking backend is not "sheets" no client is constructed and nil is
// returned, which the booking store provider treats as "use Postgres".
func New(cfg *config.Config, otl otel.Otel) *Client {
	if cfg.Booking.Backend != config.BookingBackendSheets {
		log.Info().Str("backend", cfg.Booking.Backend).Msg("Sheets client not required for configured booking backend")

		return nil
	}

	ctx := context.Background()

	creds, err := loadCredentials(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load Google credentials")
	}

	jwtConfig, err := google.JWTConfigFromJSON(creds, sheetsAPI.SpreadsheetsScope)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse Google credentials")
	}

	service, err := sheetsAPI.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Google Sheets service")
	}

	log.Info().
		Str("spreadsheetID", cfg.Sheets.SpreadsheetID).
		Str("sheet", cfg.Sheets.SheetName).
		Msg("Connected to Google Sheets")

	return &Client{
		service:       service,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
		sheetName:     cfg.Sheets.SheetName,
		otel:          otl,
	}
}

func loadCredentials(cfg *config.Config) ([]byte, error) {
	if cfg.Sheets.CredentialsFile != "" {
		creds, err := os.ReadFile(cfg.Sheets.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}

		return creds, nil
	}

	if cfg.Sheets.CredentialsJSON != "" {
		return []byte(cfg.Sheets.CredentialsJSON), nil
	}

	return nil, fmt.Errorf("neither SHEETS_CREDENTIALS_FILE nor SHEETS_CREDENTIALS_JSON is set")
}

// ReadRows fetches every data row of the booking sheet as string cells.
func (c *Client) ReadRows(ctx context.Context) ([][]string, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSheetsScopeName, constant.OtelSheetsScopeName+".ReadRows")
	defer scope.End()

	readRange := c.sheetName + dataRange
	scope.SetAttribute("sheets.range", readRange)

	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("range", readRange).Msg("failed to read booking rows")

		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, len(values))
		for i, value := range values {
			row[i] = fmt.Sprintf("%v", value)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// AppendRow appends one row after the last data row of the sheet.
func (c *Client) AppendRow(ctx context.Context, row []any) error {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSheetsScopeName, constant.OtelSheetsScopeName+".AppendRow")
	defer scope.End()

	valueRange := &sheetsAPI.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetName+dataRange, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to append booking row")

		return fmt.Errorf("failed to append row: %w", err)
	}

	return nil
}

// UpdateRow overwrites the data row at the given zero-based index. The sheet
// address is 1-indexed with the header row excluded, hence rowIndex+2.
func (c *Client) UpdateRow(ctx context.Context, rowIndex int, row []any) error {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSheetsScopeName, constant.OtelSheetsScopeName+".UpdateRow")
	defer scope.End()

	writeRange := fmt.Sprintf("%s!A%d", c.sheetName, rowIndex+firstDataRow)
	scope.SetAttribute("sheets.range", writeRange)

	valueRange := &sheetsAPI.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("range", writeRange).Msg("failed to update booking row")

		return fmt.Errorf("failed to update row %s: %w", writeRange, err)
	}

	return nil
}
