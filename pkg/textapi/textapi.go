package textapi

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/versescope/versescope/pkg/catalog"
	"github.com/versescope/versescope/pkg/fragments"
	"github.com/versescope/versescope/pkg/reference"
	"github.com/versescope/versescope/pkg/whttp"
)

const (
	DefaultBaseURL = "https://parabible.com/api/v2/text"
	DefaultTimeout = 20 * time.Second
	DefaultRetries = 3

	maxDetailLen = 200
)

// Logger abstracts logging so callers can plug in logrus or anything with the same methods.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Options configures a Client.
type Options struct {
	BaseURL string
	Style   reference.QueryStyle
	Retries int
	Timeout time.Duration
	Proxy   string
	Log     Logger
}

// Client fetches chapter text for a selection of translations.
type Client struct {
	baseURL string
	style   reference.QueryStyle
	http    *retryablehttp.Client
	log     Logger
}

func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Style == "" {
		opts.Style = reference.StylePlus
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}

	hc, err := whttp.NewClient(whttp.ClientOptions{
		Retries: opts.Retries,
		Timeout: opts.Timeout,
		Proxy:   opts.Proxy,
	})
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: opts.BaseURL, style: opts.Style, http: hc, log: log}, nil
}

// URL builds the request URL for sel and ref. Short names are joined with literal commas.
func (c *Client) URL(sel catalog.Selection, ref reference.Reference) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", &TransportError{Kind: BadURL, Detail: c.baseURL, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &TransportError{Kind: BadURL, Detail: c.baseURL}
	}

	modules := make([]string, 0, len(sel))
	for _, name := range sel.ShortNames() {
		modules = append(modules, url.QueryEscape(name))
	}
	query := "modules=" + strings.Join(modules, ",") + "&reference=" + ref.QueryString(c.style)
	if u.RawQuery != "" {
		query = u.RawQuery + "&" + query
	}
	u.RawQuery = query
	return u.String(), nil
}

// Fetch requests ref for every translation in sel and decodes the response.
// An empty selection returns no fragments without touching the network.
func (c *Client) Fetch(ctx context.Context, sel catalog.Selection, ref reference.Reference) ([]fragments.TextFragment, error) {
	if len(sel) == 0 {
		return []fragments.TextFragment{}, nil
	}

	reqURL, err := c.URL(sel, ref)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("Fetching %s", reqURL)

	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{Method: "GET", URL: reqURL}, c.http)
	if err != nil {
		return nil, classify(err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		detail := res.HTTPTitle
		if detail == "" {
			detail = truncate(strings.TrimSpace(res.BodyString), maxDetailLen)
		}
		return nil, &TransportError{Kind: BadStatus, StatusCode: res.StatusCode, Detail: detail}
	}

	if !gjson.Valid(res.BodyString) {
		return nil, &TransportError{Kind: BadBody, Detail: "response is not valid JSON: " + truncate(res.BodyString, maxDetailLen)}
	}

	frags, err := fragments.DecodeResponse(res.BodyString)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("Decoded %d fragments for %s (%s)", len(frags), ref, sel.ModulesParam())
	return frags, nil
}

func classify(err error) error {
	var netErr net.Error
	var urlErr *url.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &TransportError{Kind: Timeout, Detail: err.Error(), Err: err}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &TransportError{Kind: Timeout, Detail: err.Error(), Err: err}
	case errors.As(err, &urlErr) && urlErr.Op == "parse":
		return &TransportError{Kind: BadURL, Detail: err.Error(), Err: err}
	default:
		return &TransportError{Kind: Network, Detail: err.Error(), Err: err}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
