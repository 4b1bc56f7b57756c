package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Open opens a connection pool for the driver and checks it is reachable within pingTimeout.
// The driver must have been registered by the caller through a blank import.
func Open(driver, connectionURL string, pingTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(driver, connectionURL)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(context.Background(), pingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, nil
}

// Rebind rewrites the ? placeholders of query into the numbered form postgres expects.
// Other drivers get the query untouched.
func Rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// layout ramsql stores timestamps with, it is also the only one it lexes outside a VALUES list
const ramsqlTime = "2006-01-02 15:04:05.999999999 -0700 MST"

// Time returns t in a form driver can bind. ramsql writes arguments into the query text,
// so it gets a string it parses back into a time.Time; every other driver gets t.
func Time(driver string, t time.Time) any {
	if driver == "ramsql" {
		return t.Format(ramsqlTime)
	}
	return t
}
