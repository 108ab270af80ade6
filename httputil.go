package scout

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// contains http utils to deal with remote services

// ErrMalformedResponse is returned when an upstream body is not valid JSON.
var ErrMalformedResponse = errors.New("malformed response")

// StatusError is returned when an upstream service answers with a non 2xx status,
// after retries.
type StatusError struct {
	Code   int
	Method string
	Host   string
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot http %s %s%s: %d %s", e.Method, e.Host, e.Path, e.Code, http.StatusText(e.Code))
}

// RetryStatuses are the status codes worth retrying.
var RetryStatuses = []int{
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// retryMethods are the methods retried on a retryable status.
var retryMethods = []string{http.MethodGet, http.MethodPut, http.MethodPost}

// RetryPolicy bounds the retries of a client: at most Max retries, waiting
// Factor * 2^attempt between them.
type RetryPolicy struct {
	Max    int
	Factor time.Duration
}

func (p RetryPolicy) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if !slices.Contains(retryMethods, resp.Request.Method) {
		return false, nil
	}
	return slices.Contains(RetryStatuses, resp.StatusCode), nil
}

func (p RetryPolicy) backoff(_, _ time.Duration, attempt int, resp *http.Response) time.Duration {
	if resp != nil && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable) {
		if s := resp.Header.Get("Retry-After"); s != "" {
			if sec, err := strconv.Atoi(s); err == nil {
				return time.Duration(sec) * time.Second
			}
		}
	}
	return p.Factor * time.Duration(1<<attempt)
}

// NewClient returns an http client that retries according to policy.
//
// Successful responses are cached for the day in cacheDir, if not empty.
func NewClient(policy RetryPolicy, cacheDir string) *http.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = policy.Max
	c.CheckRetry = policy.checkRetry
	c.Backoff = policy.backoff
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.Logger = nil
	c.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			log.Printf("retry #%d %v %v%v", attempt, req.Method, req.URL.Host, req.URL.Path)
		}
	}
	if cacheDir != "" {
		c.HTTPClient.Transport = &DailyCache{Base: c.HTTPClient.Transport, Dir: cacheDir}
	}
	return c.StandardClient()
}

// DailyCache is a disk cache for HTTP responses that expires every day.
//
// Requests are keyed by day, method, url and body, so searches sent as POST are cached
// too. Only 2xx responses are stored.
type DailyCache struct {
	Base http.RoundTripper
	Dir  string
}

func (c *DailyCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key, err := c.key(req)
	if err != nil {
		return nil, err
	}

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	base := c.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err = base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// key returns the cache key of a request, it leaves the request body readable.
func (c *DailyCache) key(req *http.Request) (string, error) {
	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	key := fmt.Sprintf("%s %s %s %x", Today().String(), req.Method, req.URL.String(), sha1.Sum(body))
	return fmt.Sprintf("%x", sha1.Sum([]byte(key))), nil
}

// get retrieves a cached response from disk
func (c *DailyCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.Dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache, the response body remains readable.
func (c *DailyCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Dir, key), content, 0o644)
}

// DoJSON sends body (if not nil) as JSON and decodes the JSON response into out.
//
// It returns a *StatusError for non 2xx statuses and wraps ErrMalformedResponse when
// the response is not JSON.
func DoJSON(ctx context.Context, client *http.Client, method, addr string, header http.Header, body, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode %s %s request: %w", method, addr, err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, addr, r)
	if err != nil {
		return err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Method: method, Host: req.URL.Host, Path: req.URL.Path}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, out); err != nil {
		log.Printf("malformed response to %v %v%v: %v %v", method, req.URL.Host, req.URL.Path, resp.Status, resp.Header)
		return fmt.Errorf("%w from %s%s: %v", ErrMalformedResponse, req.URL.Host, req.URL.Path, err)
	}
	return nil
}
