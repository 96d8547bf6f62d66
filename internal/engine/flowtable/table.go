package flowtable

import (
	"NetSentry/internal/model"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultShardCount = 256

// shard is a part of the sharded flow map, with its own mutex. The
// ingestion workers and the expiry sweep contend only per shard.
type shard struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

// Table maps canonical bidirectional flow keys to in-progress flows. It
// owns every Flow it holds; a flow leaves the table exactly once, already
// closed and finalized, and re-arrival of the same key starts a brand-new
// flow.
type Table struct {
	shards     []*shard
	shardCount uint32

	timeout        time.Duration
	idleThreshold  time.Duration
	bulkMinPackets int
}

// New creates a flow table. timeout is the inactivity closure threshold,
// idleThreshold the active/idle segmentation gap, bulkMinPackets the
// minimum payload-run length counted as a bulk transfer.
func New(numShards uint32, timeout, idleThreshold time.Duration, bulkMinPackets int) *Table {
	if numShards == 0 || numShards > 65536 {
		numShards = defaultShardCount
	}
	t := &Table{
		shards:         make([]*shard, numShards),
		shardCount:     numShards,
		timeout:        timeout,
		idleThreshold:  idleThreshold,
		bulkMinPackets: bulkMinPackets,
	}
	for i := range t.shards {
		t.shards[i] = &shard{flows: make(map[string]*Flow)}
	}
	return t
}

// CanonicalKey returns the direction-independent identity of a packet's
// flow: the same key regardless of which endpoint sent the packet.
func CanonicalKey(ft model.FiveTuple) string {
	src := ft.SrcIP.String()
	dst := ft.DstIP.String()
	a := src + ":" + strconv.Itoa(int(ft.SrcPort))
	b := dst + ":" + strconv.Itoa(int(ft.DstPort))
	if a > b {
		a, b = b, a
	}
	return strings.Join([]string{a, b, strconv.Itoa(int(ft.Protocol))}, "-")
}

func (t *Table) getShard(key string) *shard {
	hasher := fnv.New32a()
	hasher.Write([]byte(key))
	return t.shards[hasher.Sum32()%t.shardCount]
}

// Ingest applies one packet to its flow, creating the flow if absent with
// the packet's direction fixed as forward. If the packet closes the flow
// (FIN both ways or RST) the closed, finalized flow is returned and its
// entry removed.
func (t *Table) Ingest(pkt *model.PacketInfo) *Flow {
	key := CanonicalKey(pkt.FiveTuple)
	s := t.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[key]
	if !ok {
		flow = newFlow(key, pkt)
		s.flows[key] = flow
	}

	if flow.update(pkt, t.idleThreshold, t.bulkMinPackets) {
		delete(s.flows, key)
		flow.finalize(t.bulkMinPackets)
		return flow
	}
	return nil
}

// SweepInactive force-closes every flow whose last activity is older than
// the inactivity timeout and returns them for export. Intended to run
// periodically, not per packet.
func (t *Table) SweepInactive(now time.Time) []*Flow {
	var expired []*Flow
	for _, s := range t.shards {
		s.mu.Lock()
		for key, flow := range s.flows {
			if now.Sub(flow.LastSeen) > t.timeout {
				delete(s.flows, key)
				flow.finalize(t.bulkMinPackets)
				expired = append(expired, flow)
			}
		}
		s.mu.Unlock()
	}
	return expired
}

// FlushAll closes and returns every remaining flow. Used at shutdown so
// short captures still produce classifications.
func (t *Table) FlushAll() []*Flow {
	var flows []*Flow
	for _, s := range t.shards {
		s.mu.Lock()
		for key, flow := range s.flows {
			delete(s.flows, key)
			flow.finalize(t.bulkMinPackets)
			flows = append(flows, flow)
		}
		s.mu.Unlock()
	}
	return flows
}

// Len returns the number of in-progress flows.
func (t *Table) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.Lock()
		n += len(s.flows)
		s.mu.Unlock()
	}
	return n
}
