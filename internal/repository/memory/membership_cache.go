package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/charley4805/project-pretzel/internal/entity"
)

// MembershipCache keeps resolved (project, user) -> membership lookups in
// memory so the role gate doesn't hit the database on every assistant turn.
// Membership changes are rare; a short TTL bounds the staleness window.
type MembershipCache struct {
	cache *cache.Cache
}

func NewMembershipCache() *MembershipCache {
	// 5 minute expiration, purges expired entries every 10 minutes
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &MembershipCache{
		cache: c,
	}
}

func key(projectId, userId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", projectId, userId)
}

func (r *MembershipCache) Save(member *entity.ProjectMember) {
	r.cache.Set(key(member.ProjectId, member.UserId), member, cache.DefaultExpiration)
}

func (r *MembershipCache) Get(projectId, userId uuid.UUID) (*entity.ProjectMember, bool) {
	if x, found := r.cache.Get(key(projectId, userId)); found {
		return x.(*entity.ProjectMember), true
	}
	return nil, false
}

func (r *MembershipCache) Delete(projectId, userId uuid.UUID) {
	r.cache.Delete(key(projectId, userId))
}
