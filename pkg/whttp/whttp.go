package whttp

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/html"
)

const userAgent = "versescope/1.0 (+https://github.com/versescope/versescope)"

type WHTTPHeader struct {
	Name  string
	Value string
}

type WHTTPReq struct {
	URL     string
	Method  string
	Headers []WHTTPHeader
}

type WHTTPRes struct {
	StatusCode     int
	ResponseLength int
	ContentType    string
	HTTPTitle      string
	BodyString     string
}

// Printfer is the logging hook retryablehttp accepts.
type Printfer interface {
	Printf(format string, args ...interface{})
}

// ClientOptions configures NewClient.
type ClientOptions struct {
	Retries int
	Timeout time.Duration
	Proxy   string
	Logger  Printfer // nil discards retry logs
}

// NewClient builds a retrying client. Non-2xx responses are handed back to the
// caller once retries are exhausted instead of being turned into an error.
func NewClient(opts ClientOptions) (*retryablehttp.Client, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.Retries
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if opts.Logger != nil {
		client.Logger = opts.Logger
	} else {
		client.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Timeout > 0 {
		client.HTTPClient.Timeout = opts.Timeout
	}

	if opts.Proxy != "" {
		proxyURL, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		transport, ok := client.HTTPClient.Transport.(*http.Transport)
		if !ok {
			transport = http.DefaultTransport.(*http.Transport).Clone()
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		client.HTTPClient.Transport = transport
	}
	return client, nil
}

func SendHTTPRequest(ctx context.Context, wReq *WHTTPReq, client *retryablehttp.Client) (wRes *WHTTPRes, err error) {
	if client == nil {
		if client, err = NewClient(ClientOptions{}); err != nil {
			return nil, err
		}
	}

	method := wReq.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, wReq.URL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	for _, h := range wReq.Headers {
		req.Header.Add(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	wRes = &WHTTPRes{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		BodyString:  string(bodyBytes),
	}
	wRes.ResponseLength = utf8.RuneCountInString(wRes.BodyString)

	if strings.Contains(wRes.ContentType, "html") {
		wRes.HTTPTitle = PageSummary(wRes.BodyString)
	}
	return wRes, nil
}

// PageSummary returns a one-line description of an HTML page: its <title>, or the first <h1>.
func PageSummary(body string) string {
	if title, ok := getHTMLTitle(body); ok && strings.TrimSpace(title) != "" {
		return cleanLine(title)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	return cleanLine(doc.Find("h1").First().Text())
}

func cleanLine(s string) string {
	s = strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", "")
	return strings.ToValidUTF8(strings.TrimSpace(s), "")
}

func isTitleElement(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "title"
}

func traverse(n *html.Node) (string, bool) {
	if isTitleElement(n) {
		if n.FirstChild != nil {
			return n.FirstChild.Data, true
		}
		return "", true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result, ok := traverse(c)
		if ok {
			return result, ok
		}
	}

	return "", false
}

func getHTMLTitle(body string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", false
	}

	return traverse(doc)
}
