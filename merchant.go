package go_netaxept

import "net/url"

// Merchant holds Netaxept merchant credentials.
//
// Every outbound call carries these as merchantId/token form fields; there
// is no separate authentication handshake.
type Merchant struct {
	ID    string
	Token string
}

func NewMerchant(id string, token string) *Merchant {
	return &Merchant{ID: id, Token: token}
}

// Values returns the authentication form fields merged into every request.
func (m *Merchant) Values() url.Values {
	v := url.Values{}
	if m == nil {
		return v
	}
	if m.ID != "" {
		v.Set("merchantId", m.ID)
	}
	if m.Token != "" {
		v.Set("token", m.Token)
	}
	return v
}
