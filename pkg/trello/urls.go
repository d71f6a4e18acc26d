package trello

import (
	"fmt"
	"strings"
)

// URLBuilder composes request URLs from one set of connection settings. All
// methods are pure string templating; no I/O is performed.
type URLBuilder struct {
	apiURL     string
	authSuffix string
}

// NewURLBuilder creates a builder for the API base URL
// {protocol}://{domain}/{version}/ with the query-string auth suffix
// ?key={key}&token={token} appended to every request URL.
func NewURLBuilder(protocol, apiDomain, apiVersion, key, token string) *URLBuilder {
	return &URLBuilder{
		apiURL:     fmt.Sprintf("%s://%s/%s/", protocol, apiDomain, apiVersion),
		authSuffix: fmt.Sprintf("?key=%s&token=%s", key, token),
	}
}

// APIURL returns the base URL, trailing-slash-terminated.
func (b *URLBuilder) APIURL() string {
	return b.apiURL
}

// InstanceURL returns the canonical URL for one resource instance, always
// trailing-slash-terminated and without the auth suffix so that further path
// segments or query strings can be appended.
func (b *URLBuilder) InstanceURL(config *ResourceConfig, id string) string {
	return b.apiURL + config.URIStub() + "/" + id + "/"
}

// SubresourceURL returns the request URL for a subresource collection of one
// resource instance.
func (b *URLBuilder) SubresourceURL(config *ResourceConfig, id, subresource string) string {
	return b.apiURL + config.URIStub() + "/" + id + "/" + subresource + b.authSuffix
}

// ParentURL returns the request URL for a parent lookup from instanceURL,
// optionally scoped to a single field. The parent name is used verbatim in
// the path; see ParentResultKey for the results-map key.
func (b *URLBuilder) ParentURL(instanceURL, parent, field string) string {
	requestURL := instanceURL + parent + "/"
	if field != "" {
		requestURL += field + "/"
	}

	return requestURL + b.authSuffix
}

// FilterURL returns the request URL that narrows instanceURL to the items
// matching filters.
func (b *URLBuilder) FilterURL(instanceURL string, filters []string) string {
	return instanceURL + b.authSuffix + "&filter=" + strings.Join(filters, ",")
}

// DiscoveredURL returns the URL for a sibling resource discovered in a
// response body. Unlike InstanceURL there is no trailing slash before the
// auth suffix; the upstream scheme is asymmetric here.
func (b *URLBuilder) DiscoveredURL(stub, id string) string {
	return b.apiURL + stub + "/" + id + b.authSuffix
}

// ParentResultKey returns the key under which a parent lookup is stored in a
// results map. The upstream API uses singular parent names in most URL paths
// but plural collection stubs everywhere else, so a name that does not
// already end in "s" gets one appended. This is a fixed lookup-key transform
// for an upstream naming quirk, not a general pluralizer; it will need
// revisiting if the upstream scheme changes.
func ParentResultKey(parent string) string {
	if strings.HasSuffix(parent, "s") {
		return parent
	}

	return parent + "s"
}
