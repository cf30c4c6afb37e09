package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/executor"

	"github.com/patrickmn/go-cache"
)

// ResponseCache memoizes validated pipeline results keyed by the query plus
// the profile fields that influence the outcome. Safety-filtered responses
// are cheap to recompute and are never cached.
type ResponseCache struct {
	cache *cache.Cache
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ResponseCache{
		cache: cache.New(ttl, 5*time.Minute),
	}
}

func (c *ResponseCache) Get(query string, profile *entity.StudentProfile) (*executor.Result, bool) {
	if x, found := c.cache.Get(CacheKey(query, profile)); found {
		return x.(*executor.Result), true
	}
	return nil, false
}

func (c *ResponseCache) Set(query string, profile *entity.StudentProfile, result *executor.Result) {
	c.cache.Set(CacheKey(query, profile), result, cache.DefaultExpiration)
}

// CacheKey hashes the query together with the ranking-relevant profile
// fields. Marks are hashed as sorted subject/mark pairs: subject identity
// drives retrieval and validation, so profiles with different subjects must
// never share a key even when their APS totals agree.
func CacheKey(query string, profile *entity.StudentProfile) string {
	h := sha256.New()
	h.Write([]byte(query))
	if profile != nil {
		fmt.Fprintf(h, "|g%d|tier:%s|income%d|cz:%s",
			profile.Grade, profile.FinancialTier, profile.HouseholdIncome, profile.Citizenship)
		subjects := make([]string, 0, len(profile.Marks))
		for subject := range profile.Marks {
			subjects = append(subjects, subject)
		}
		sort.Strings(subjects)
		for _, subject := range subjects {
			fmt.Fprintf(h, "|m:%s=%d", subject, profile.Marks[subject])
		}
		for _, interest := range profile.Interests {
			fmt.Fprintf(h, "|i:%s", interest)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
