package collection

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// TokenURI returns the metadata URI of an issued token
func (c *Collection) TokenURI(id domain.TokenID) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.state.Tokens[id]; !ok {
		return "", domain.ErrNotMinted
	}

	p := &c.state.Params
	return fmt.Sprintf("%s/collection-launches/%s/tokens/%s/metadata?network=%s",
		strings.TrimSuffix(p.BaseURI, "/"),
		strings.ToLower(p.Address.Hex()),
		id,
		url.QueryEscape(string(p.Network)),
	), nil
}
