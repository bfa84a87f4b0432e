// Package ingest turns raw telemetry feeds into snapshots the results
// engine can score: JSON decoding and shape validation, one-shot HTTP
// fetches and the live websocket reader.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/MagicAardvark/race-results-sub000/pkg/caster"
	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

// ValidationError reports a snapshot that violates the basic shape
// contract. Scoring never sees a snapshot that failed validation.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid snapshot: %s: %s", e.Path, e.Reason)
}

var snapshotCaster = caster.JSONChannelCaster[model.Snapshot]{}

// ParseSnapshot validates and decodes one snapshot document.
func ParseSnapshot(data []byte) (model.Snapshot, error) {
	if err := validateSnapshot(data); err != nil {
		return model.Snapshot{}, err
	}

	snap, err := snapshotCaster.From(string(data))
	if err != nil {
		return model.Snapshot{}, errors.Wrap(err, "decoding snapshot")
	}
	return snap, nil
}

func validateSnapshot(data []byte) error {
	if !gjson.ValidBytes(data) {
		return &ValidationError{Path: ".", Reason: "not valid JSON"}
	}

	doc := gjson.ParseBytes(data)
	entries := doc.Get("entries")
	if entries.Exists() && !entries.IsArray() {
		return &ValidationError{Path: "entries", Reason: "must be an array"}
	}

	var verr *ValidationError
	entries.ForEach(func(i, entry gjson.Result) bool {
		runs := entry.Get("runs")
		path := fmt.Sprintf("entries.%d.runs", i.Int())
		if !runs.Exists() || !runs.IsArray() {
			verr = &ValidationError{Path: path, Reason: "must be an array of segments"}
			return false
		}
		ok := true
		runs.ForEach(func(j, segment gjson.Result) bool {
			if !segment.IsArray() {
				verr = &ValidationError{
					Path:   fmt.Sprintf("%s.%d", path, j.Int()),
					Reason: "segment must be an array of run tuples",
				}
				ok = false
			}
			return ok
		})
		return ok
	})
	if verr != nil {
		return verr
	}
	return nil
}

// FetchSnapshot downloads and parses a snapshot from a timing provider
// endpoint, retrying transient failures.
func FetchSnapshot(ctx context.Context, url string) (model.Snapshot, error) {
	client := retryablehttp.NewClient()
	client.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Snapshot{}, errors.Wrap(err, "building snapshot request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return model.Snapshot{}, errors.Wrapf(err, "fetching snapshot from %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Snapshot{}, errors.Errorf("fetching snapshot from %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Snapshot{}, errors.Wrap(err, "reading snapshot body")
	}
	return ParseSnapshot(body)
}
