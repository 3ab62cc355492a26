package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// EmailChecker validates registration addresses. With CheckDomain set the
// domain must also resolve (MX or A/AAAA).
type EmailChecker struct {
	CheckDomain bool
}

func (e EmailChecker) Valid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	if !e.CheckDomain {
		return true
	}
	return IsEmailDomainValid(email)
}

func IsEmailDomainValid(email string) bool {
	_, host, ok := strings.Cut(email, "@")
	if !ok || host == "" || strings.Contains(host, "@") {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var r net.Resolver
	if mx, err := r.LookupMX(ctx, host); err == nil && len(mx) > 0 {
		return true
	}
	addrs, err := r.LookupHost(ctx, host)
	return err == nil && len(addrs) > 0
}
