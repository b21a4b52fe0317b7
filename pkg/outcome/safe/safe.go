package safe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/errs"
)

// Do runs f and repackages a returned error, or a panic, as a single
// Failure outcome. It is the generic entry for code that was not written
// against the algebra.
func Do[T any](ctx context.Context, f func(ctx context.Context) (T, error)) (res outcome.Of[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = outcome.ErrorOf[T](errs.NewFailure(
				fmt.Sprintf("recovered from panic: %v", r), nil))
		}
	}()

	v, err := f(ctx)
	if err != nil {
		return outcome.ErrorOf[T](errs.NewUnexpected(err))
	}
	return outcome.SuccessOf(v)
}

// ReadFile reads a file into memory, repackaging the I/O fault with the
// path it happened on.
func ReadFile(path string) outcome.Of[[]byte] {
	data, err := os.ReadFile(path)
	if err != nil {
		return outcome.ErrorOf[[]byte](errs.NewFailure(
			"reading file failed",
			map[string]any{"path": path},
			errs.NewUnexpected(err)))
	}
	return outcome.SuccessOf(data)
}

// DecodeJSON unmarshals data into T.
func DecodeJSON[T any](data []byte) outcome.Of[T] {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return outcome.ErrorOf[T](errs.NewValidation(
			"decoding JSON failed",
			map[string]string{"payload": err.Error()},
			errs.NewUnexpected(err)))
	}
	return outcome.SuccessOf(v)
}

// EncodeJSON marshals v.
func EncodeJSON(v any) outcome.Of[[]byte] {
	data, err := json.Marshal(v)
	if err != nil {
		return outcome.ErrorOf[[]byte](errs.NewUnexpected(err))
	}
	return outcome.SuccessOf(data)
}

// Fetch performs a GET against url and returns the body. Transport faults
// and non-2xx statuses both collapse to a single error outcome. A nil
// client falls back to http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, url string) outcome.Of[[]byte] {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return outcome.ErrorOf[[]byte](errs.NewValidation(
			"building request failed",
			map[string]string{"url": err.Error()},
			errs.NewUnexpected(err)))
	}

	resp, err := client.Do(req)
	if err != nil {
		return outcome.ErrorOf[[]byte](errs.NewFailure(
			"request failed",
			map[string]any{"url": url},
			errs.NewUnexpected(err)))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return outcome.ErrorOf[[]byte](errs.NewFailure(
			"reading response failed",
			map[string]any{"url": url},
			errs.NewUnexpected(err)))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return outcome.ErrorOf[[]byte](errs.NewFailure(
			"request returned a non-success status",
			map[string]any{"url": url, "status": resp.StatusCode}))
	}
	return outcome.SuccessOf(body)
}

// ParseInt parses s in base 10.
func ParseInt(s string) outcome.Of[int64] {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return outcome.ErrorOf[int64](errs.NewValidation(
			"parsing integer failed",
			map[string]string{"input": s},
			errs.NewUnexpected(err)))
	}
	return outcome.SuccessOf(n)
}

// At indexes s, turning an out-of-range access into a NotFound outcome
// instead of a panic.
func At[T any](s []T, i int) outcome.Of[T] {
	if i < 0 || i >= len(s) {
		return outcome.ErrorOf[T](errs.NewNotFound("element", i))
	}
	return outcome.SuccessOf(s[i])
}
