package server

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// answer is a solved request before the limit is applied.
type answer struct {
	results []string
	grid    []string
}

// HotCache keeps the answers of recent requests, evicting the least
// recently used one when full.
type HotCache struct {
	answers     map[string]answer
	accessTime  map[string]int64
	accessCount int64
	hits        int
	maxEntries  int
	mu          sync.Mutex
}

// NewHotCache creates a cache for up to maxEntries answers. Zero or less
// disables caching.
func NewHotCache(maxEntries int) *HotCache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &HotCache{
		answers:    make(map[string]answer, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// cacheKey identifies a request by every field that changes its answer.
func cacheKey(req SolveRequest) string {
	mode := req.Mode
	if mode == "" {
		mode = ModeLookup
	}
	return strings.Join([]string{
		mode, req.Pattern, req.Letters, req.Found, req.Target, strconv.FormatBool(req.Subset),
	}, "\x00")
}

// Get returns the cached answer for key.
func (hc *HotCache) Get(key string) (answer, bool) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	a, ok := hc.answers[key]
	if !ok {
		return answer{}, false
	}
	hc.hits++
	hc.markAccessed(key)
	return a, true
}

// Put stores an answer.
func (hc *HotCache) Put(key string, a answer) {
	if hc.maxEntries == 0 {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if _, ok := hc.answers[key]; !ok && len(hc.answers) >= hc.maxEntries {
		hc.evictLRU()
	}
	hc.answers[key] = a
	hc.markAccessed(key)
}

// Stats reports the cache size and hit count.
func (hc *HotCache) Stats() map[string]int {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	return map[string]int{
		"cachedAnswers": len(hc.answers),
		"maxAnswers":    hc.maxEntries,
		"cacheHits":     hc.hits,
	}
}

func (hc *HotCache) markAccessed(key string) {
	hc.accessCount++
	hc.accessTime[key] = hc.accessCount
}

func (hc *HotCache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = math.MaxInt64

	for key, accessTime := range hc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestKey = key
		}
	}

	if oldestTime != math.MaxInt64 {
		delete(hc.answers, oldestKey)
		delete(hc.accessTime, oldestKey)
		log.Debugf("Evicted %q from hot cache", strings.ReplaceAll(oldestKey, "\x00", "|"))
	}
}
