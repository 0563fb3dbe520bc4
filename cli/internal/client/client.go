// ABOUTME: HTTP client for the hydronic sizing API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the API client for the hydronic sizing backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HealthResponse represents the /api/v1/health endpoint response
type HealthResponse struct {
	Status  string         `json:"status"`
	Catalog map[string]int `json:"catalog"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// SizePipeRequest represents a pipe sizing request
type SizePipeRequest struct {
	LoadMW             float64 `json:"load_mw,omitempty"`
	DeltaTF            float64 `json:"delta_t_f,omitempty"`
	Fluid              string  `json:"fluid,omitempty"`
	MassFlowLbHr       float64 `json:"mass_flow_lb_hr,omitempty"`
	MaxVelocityFtS     float64 `json:"max_velocity_ft_s,omitempty"`
	MaxPressureDropPsi float64 `json:"max_pressure_drop_psi,omitempty"`
}

// SizingResult represents a sized pipe segment
type SizingResult struct {
	StandardSize    string  `json:"standard_size"`
	PipeIDIn        float64 `json:"pipe_id_in"`
	FlowGPM         float64 `json:"flow_gpm"`
	VelocityFtS     float64 `json:"velocity_ft_s"`
	ReynoldsNumber  float64 `json:"reynolds_number"`
	FrictionFactor  float64 `json:"friction_factor"`
	PressureDropPsi float64 `json:"pressure_drop_psi"`
	Resolved        bool    `json:"resolved"`
}

// ChillerSearchRequest represents a chiller configuration search request
type ChillerSearchRequest struct {
	TotalLoadMW       float64 `json:"total_load_mw,omitempty"`
	Redundancy        string  `json:"redundancy,omitempty"`
	RedundancyPercent float64 `json:"redundancy_percent,omitempty"`
	Strategy          string  `json:"strategy,omitempty"`
	MaxChillers       int     `json:"max_chillers,omitempty"`
	MinLoadingPct     float64 `json:"min_loading_pct,omitempty"`
	MaxLoadingPct     float64 `json:"max_loading_pct,omitempty"`
	ElectricityRate   float64 `json:"electricity_rate,omitempty"`
	AnnualHours       float64 `json:"annual_hours,omitempty"`
}

// ChillerConfig represents one feasible plant configuration
type ChillerConfig struct {
	UnitCapacityMW       float64 `json:"unit_capacity_mw"`
	UnitCapacityTons     float64 `json:"unit_capacity_tons"`
	TotalChillers        int     `json:"total_chillers"`
	OperatingChillers    int     `json:"operating_chillers"`
	RedundantChillers    int     `json:"redundant_chillers"`
	TotalCapacityMW      float64 `json:"total_capacity_mw"`
	TotalCapacityTons    float64 `json:"total_capacity_tons"`
	LoadingPct           float64 `json:"loading_pct"`
	RedundancyPct        float64 `json:"redundancy_pct"`
	COP                  float64 `json:"cop"`
	KWPerTon             float64 `json:"kw_per_ton"`
	AnnualKWh            float64 `json:"annual_kwh"`
	AnnualEnergyUSD      float64 `json:"annual_energy_usd"`
	InstallUSD           float64 `json:"install_usd"`
	AnnualMaintenanceUSD float64 `json:"annual_maintenance_usd"`
	TenYearTCOUSD        float64 `json:"ten_year_tco_usd"`
	TCOPerMW             float64 `json:"tco_per_mw"`
}

// PlantAnalyzeRequest represents a full-building analysis request
type PlantAnalyzeRequest struct {
	Layout             string               `json:"layout"`
	HallLoadsMW        map[string]float64   `json:"hall_loads_mw,omitempty"`
	DefaultHallLoadMW  float64              `json:"default_hall_load_mw,omitempty"`
	FanHeatPct         *float64             `json:"fan_heat_pct,omitempty"`
	DeltaTF            float64              `json:"delta_t_f,omitempty"`
	Fluid              string               `json:"fluid,omitempty"`
	MaxVelocityFtS     float64              `json:"max_velocity_ft_s,omitempty"`
	MaxPressureDropPsi float64              `json:"max_pressure_drop_psi,omitempty"`
	Chillers           ChillerSearchRequest `json:"chillers,omitempty"`
}

// Layout represents the parsed building layout
type Layout struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
	Floors  int `json:"floors"`
}

// RiserResult represents one sized column riser
type RiserResult struct {
	Column        string       `json:"column"`
	HallCount     int          `json:"hall_count"`
	Halls         []string     `json:"halls"`
	ITLoadMW      float64      `json:"it_load_mw"`
	CoolingLoadMW float64      `json:"cooling_load_mw"`
	FlowGPM       float64      `json:"flow_gpm"`
	Sizing        SizingResult `json:"sizing"`
}

// PlantReport represents the full plant analysis response
type PlantReport struct {
	Layout         Layout          `json:"layout"`
	FanHeatPct     float64         `json:"fan_heat_pct"`
	TotalITLoadMW  float64         `json:"total_it_load_mw"`
	TotalCoolingMW float64         `json:"total_cooling_mw"`
	Risers         []RiserResult   `json:"risers"`
	Chillers       []ChillerConfig `json:"chillers"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// Health calls the /api/v1/health endpoint
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	return &health, nil
}

// SizePipe calls POST /api/v1/pipe/size
func (c *Client) SizePipe(ctx context.Context, input *SizePipeRequest) (*SizingResult, error) {
	resp, err := c.post(ctx, "/api/v1/pipe/size", input)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var result SizingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	return &result, nil
}

// SearchChillers calls POST /api/v1/chillers/search
func (c *Client) SearchChillers(ctx context.Context, input *ChillerSearchRequest) ([]ChillerConfig, error) {
	resp, err := c.post(ctx, "/api/v1/chillers/search", input)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var configs []ChillerConfig
	if err := json.NewDecoder(resp.Body).Decode(&configs); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	return configs, nil
}

// AnalyzePlant calls POST /api/v1/plant/analyze
func (c *Client) AnalyzePlant(ctx context.Context, input *PlantAnalyzeRequest) (*PlantReport, error) {
	resp, err := c.post(ctx, "/api/v1/plant/analyze", input)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var report PlantReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	return &report, nil
}

// post sends a JSON POST request to the given path
func (c *Client) post(ctx context.Context, path string, input interface{}) (*http.Response, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	return resp, nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("backend error: %s", errResp.Error)
}
