package adapter

import (
	"fmt"
	"strconv"
	"strings"
)

// Descriptor describes how to reach one database: the parsed form of a
// space-separated "key=value" connection string with the keys host, port,
// dbname, user and password.
type Descriptor struct {
	Host     string
	Port     int
	DBName   string
	User     string
	Password string
}

// ParseDescriptor parses a connection descriptor string. Unknown keys,
// pairs without '=', a non-numeric port, or a missing dbname are rejected
// without any network activity.
func ParseDescriptor(s string) (Descriptor, error) {
	var d Descriptor
	if strings.TrimSpace(s) == "" {
		return d, fmt.Errorf("empty connection descriptor")
	}
	for _, pair := range strings.Fields(s) {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return d, fmt.Errorf("malformed descriptor element %q: expected key=value", pair)
		}
		switch key {
		case "host":
			d.Host = val
		case "port":
			p, err := strconv.Atoi(val)
			if err != nil || p <= 0 || p > 65535 {
				return d, fmt.Errorf("invalid port %q", val)
			}
			d.Port = p
		case "dbname":
			d.DBName = val
		case "user":
			d.User = val
		case "password":
			d.Password = val
		default:
			return d, fmt.Errorf("unknown descriptor key %q", key)
		}
	}
	if d.DBName == "" {
		return d, fmt.Errorf("descriptor missing required key dbname")
	}
	return d, nil
}

// String reassembles the descriptor, omitting unset keys. The password is
// included; use Redacted for log output.
func (d Descriptor) String() string {
	return d.render(false)
}

// Redacted renders the descriptor with the password masked.
func (d Descriptor) Redacted() string {
	return d.render(true)
}

func (d Descriptor) render(redact bool) string {
	var parts []string
	if d.Host != "" {
		parts = append(parts, "host="+d.Host)
	}
	if d.Port != 0 {
		parts = append(parts, "port="+strconv.Itoa(d.Port))
	}
	if d.DBName != "" {
		parts = append(parts, "dbname="+d.DBName)
	}
	if d.User != "" {
		parts = append(parts, "user="+d.User)
	}
	if d.Password != "" {
		pw := d.Password
		if redact {
			pw = "****"
		}
		parts = append(parts, "password="+pw)
	}
	return strings.Join(parts, " ")
}

// withDefaults returns a copy with host and port defaulted for backends
// that require them.
func (d Descriptor) withDefaults(port int) Descriptor {
	if d.Host == "" {
		d.Host = "localhost"
	}
	if d.Port == 0 {
		d.Port = port
	}
	return d
}
