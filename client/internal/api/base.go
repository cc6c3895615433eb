package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/mertdeveci5/apollo-tools/client/internal/types"
)

// Apollo endpoint paths, relative to the client's base URL.
const (
	PeopleSearchPath       = "/v1/mixed_people/search"
	OrganizationSearchPath = "/api/v1/mixed_companies/search"
	BulkMatchPath          = "/api/v1/people/bulk_match"
)

// postJSON sends payload to path and decodes the body into out. It maps the
// two transport-level failure modes onto the SDK error kinds: RequestError
// for Do failures and non-2xx statuses, DecodeError for unparseable bodies.
func postJSON(ctx context.Context, rc *resty.Client, op, path string, payload any, out any) error {
	if err := ctx.Err(); err != nil {
		return &types.RequestError{Op: op, Underlying: err}
	}

	resp, err := rc.R().SetContext(ctx).SetBody(payload).Post(path)
	if err != nil {
		return &types.RequestError{Op: op, Underlying: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &types.RequestError{Op: op, StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &types.DecodeError{Op: op, Underlying: err}
	}
	return nil
}
