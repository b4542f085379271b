package notify

import (
	"strings"
	"testing"
)

func TestReaderConfig_EmptyGroupIsPerInstance(t *testing.T) {
	a := ConsumerConfig{Brokers: []string{"kafka:9092"}, Topic: "orders"}
	b := ConsumerConfig{Brokers: []string{"kafka:9092"}, Topic: "orders"}

	ga := a.readerConfig().GroupID
	gb := b.readerConfig().GroupID
	if ga == "" || gb == "" {
		t.Fatalf("group id must be generated, got %q / %q", ga, gb)
	}
	if !strings.HasPrefix(ga, "shopfront-") {
		t.Fatalf("unexpected group prefix: %q", ga)
	}
	// два экземпляра в одной группе делили бы события между собой;
	// broadcast требует группу на каждого
	if ga == gb {
		t.Fatalf("instances must not share a generated group: %q", ga)
	}
}

func TestReaderConfig_ExplicitGroupKept(t *testing.T) {
	c := ConsumerConfig{Brokers: []string{"kafka:9092"}, Topic: "orders", GroupID: "ops-mirror"}
	if got := c.readerConfig().GroupID; got != "ops-mirror" {
		t.Fatalf("explicit group must be kept verbatim, got %q", got)
	}
}
