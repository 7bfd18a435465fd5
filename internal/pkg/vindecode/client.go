package vindecode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
)

// DefaultBaseURL is the public NHTSA vPIC endpoint.
const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api"

// DecodeError distinguishes "we could not identify the vehicle" from every
// other failure mode. Callers must not fall through to eligibility with a
// half-decoded vehicle.
type DecodeError struct {
	VIN    string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("vin decode failed for %q: %s", e.VIN, e.Reason)
}

// Client decodes VINs against the vPIC DecodeVinValues endpoint. It
// satisfies contracts.VINDecoder.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// vpicResponse is the flat-format payload of DecodeVinValues.
type vpicResponse struct {
	Results []struct {
		Make         string `json:"Make"`
		Model        string `json:"Model"`
		ModelYear    string `json:"ModelYear"`
		Trim         string `json:"Trim"`
		BodyClass    string `json:"BodyClass"`
		EngineModel  string `json:"EngineModel"`
		Transmission string `json:"TransmissionStyle"`
		ErrorCode    string `json:"ErrorCode"`
	} `json:"Results"`
}

func (c *Client) Decode(ctx context.Context, vin string) (domain.VehicleAttributes, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if vin == "" {
		return domain.VehicleAttributes{}, &DecodeError{VIN: vin, Reason: "empty vin"}
	}

	endpoint := fmt.Sprintf("%s/vehicles/DecodeVinValues/%s?format=json", c.baseURL, url.PathEscape(vin))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.VehicleAttributes{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.VehicleAttributes{}, &DecodeError{VIN: vin, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.VehicleAttributes{}, &DecodeError{VIN: vin, Reason: fmt.Sprintf("decoder returned %d", resp.StatusCode)}
	}

	var body vpicResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.VehicleAttributes{}, &DecodeError{VIN: vin, Reason: "malformed decoder response"}
	}
	if len(body.Results) == 0 {
		return domain.VehicleAttributes{}, &DecodeError{VIN: vin, Reason: "no decode result"}
	}

	r := body.Results[0]
	if r.Make == "" && r.Model == "" {
		return domain.VehicleAttributes{}, &DecodeError{VIN: vin, Reason: "vin not recognized"}
	}

	year := 0
	if r.ModelYear != "" {
		if y, err := strconv.Atoi(r.ModelYear); err == nil {
			year = y
		}
	}

	c.logger.Debug().
		Str("vin", vin).
		Str("make", r.Make).
		Str("model", r.Model).
		Int("model_year", year).
		Msg("decoded vin")

	return domain.VehicleAttributes{
		VIN:          vin,
		ModelYear:    year,
		Make:         r.Make,
		Model:        r.Model,
		Trim:         r.Trim,
		BodyClass:    r.BodyClass,
		Engine:       r.EngineModel,
		Transmission: r.Transmission,
	}, nil
}
