// Command mdnsprobe sends a PTR query for a service type to the
// multicast group and prints every record seen in responses within the
// wait window. Useful for checking what is announcing on the local
// network.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mverkaik/elights/internal/dns"
	"github.com/mverkaik/elights/internal/mdns"
)

func main() {
	var (
		service = flag.String("service", "_elg._tcp.local", "Service type to query for")
		wait    = flag.Duration("wait", 3*time.Second, "How long to collect responses")
		raw     = flag.Bool("raw", false, "Also print packets that fail to parse")
	)
	flag.Parse()

	if err := probe(*service, *wait, *raw); err != nil {
		fmt.Fprintf(os.Stderr, "mdnsprobe error: %v\n", err)
		os.Exit(1)
	}
}

func probe(service string, wait time.Duration, raw bool) error {
	conn, err := mdns.Open()
	if err != nil {
		return err
	}
	defer conn.Close()

	query, err := mdns.BuildPTRQuery(service)
	if err != nil {
		return err
	}
	if _, err := conn.SendMulticast(query); err != nil {
		return err
	}

	deadline := time.Now().Add(wait)
	buf := make([]byte, dns.MaxMessageSize)
	for time.Now().Before(deadline) {
		msg, from, err := conn.Receive(buf)
		if err != nil {
			return err
		}
		if msg == nil {
			continue
		}

		p, err := dns.ParsePacket(msg)
		if err != nil {
			if raw {
				fmt.Printf("%s: %d bytes (unparseable: %v)\n", from, len(msg), err)
			}
			continue
		}
		if !p.Header.IsResponse() {
			continue
		}

		for _, rr := range p.Answers {
			fmt.Printf("%s: %s\n", from, formatRecord(rr))
		}
		for _, rr := range p.Additionals {
			fmt.Printf("%s: (additional) %s\n", from, formatRecord(rr))
		}
	}
	return nil
}

func formatRecord(rr dns.Record) string {
	h := rr.Header()
	name := h.Name
	if name == "" {
		name = "."
	}
	flush := ""
	if h.Class&dns.CacheFlushBit != 0 {
		flush = " flush"
	}

	switch r := rr.(type) {
	case *dns.ARecord:
		return fmt.Sprintf("%s %d IN%s A %s", name, h.TTL, flush, r.Addr)
	case *dns.PTRRecord:
		return fmt.Sprintf("%s %d IN%s PTR %s", name, h.TTL, flush, r.Target)
	case *dns.SRVRecord:
		return fmt.Sprintf("%s %d IN%s SRV %d %d %d %s", name, h.TTL, flush, r.Priority, r.Weight, r.Port, r.Target)
	case *dns.TXTRecord:
		return fmt.Sprintf("%s %d IN%s TXT %q", name, h.TTL, flush, strings.Join(r.Strings, " "))
	default:
		return fmt.Sprintf("%s %d IN%s TYPE%d (unparsed)", name, h.TTL, flush, rr.Type())
	}
}
