// Package runtime holds the process-lifetime presence state of the chat
// core: which connections belong to which users, and which users are
// currently joined to which conversations and channels. Nothing in this
// package is persisted; a restart clears everything and reconnecting
// clients rebuild it, which is the system's only recovery mechanism.
package runtime

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// lockedSet is a mutable set guarded by its own mutex. The top-level
// maps of the registry are sync.Map instances, so two goroutines
// touching different keys never contend; only mutations of the same
// per-key set serialize on this lock.
//
// A set that drains to empty is tombstoned (dead) under its own lock
// before the owner unlinks it from the top-level map. An add racing the
// teardown observes dead, fails, and retries against a fresh set, so an
// insert can never land in a set that is about to be discarded.
type lockedSet[K comparable] struct {
	mu    sync.Mutex
	dead  bool
	items map[K]struct{}
}

func newLockedSet[K comparable]() *lockedSet[K] {
	return &lockedSet[K]{items: make(map[K]struct{})}
}

// add inserts item and reports success. It fails only on a dead set;
// the caller must then unlink the tombstone and retry.
func (s *lockedSet[K]) add(item K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dead {
		return false
	}
	s.items[item] = struct{}{}
	return true
}

// remove deletes item. When the set drains to empty it is tombstoned
// and true is returned; the caller owns unlinking it from the map.
func (s *lockedSet[K]) remove(item K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, item)
	if len(s.items) == 0 {
		s.dead = true
		return true
	}
	return false
}

func (s *lockedSet[K]) empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// snapshot copies the members out under the lock; callers never see
// internal state.
func (s *lockedSet[K]) snapshot() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Keys(s.items)
}

// drain tombstones the set and returns its final members. Used by
// teardown paths that iterate the members after unlinking the set.
func (s *lockedSet[K]) drain() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dead = true
	return lo.Keys(s.items)
}

// Registry maps physical connections to users and tracks, at user
// granularity, who is present in which conversation or channel. It is
// a process-wide singleton shared by all connection handlers.
//
// Every operation is a bounded in-memory map access: no call blocks,
// fails, or returns an error. Unknown ids degrade to "not present".
//
// Cross-map consistency is only guaranteed after a mutating call
// returns. A reader racing a writer may briefly see a user in a group's
// presence set before the reverse index reflects it; that window is
// accepted so unrelated connection traffic never funnels through a
// single lock.
type Registry struct {
	log *slog.Logger

	connOwner sync.Map // connection id -> user id
	userConns sync.Map // user id -> *lockedSet[string] of connection ids

	conversations groupIndex
	channels      groupIndex
}

// groupIndex is one presence dimension (conversations or channels):
// group -> users present, plus the user -> groups reverse index used
// for cleanup when a user's last connection drops.
type groupIndex struct {
	groupUsers sync.Map // uuid.UUID -> *lockedSet[string]
	userGroups sync.Map // user id -> *lockedSet[uuid.UUID]
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{log: log}
}

// AddConnection registers a live connection for a user. Idempotent, and
// safe to call concurrently for different devices of the same user.
func (r *Registry) AddConnection(userID, connectionID string) {
	if userID == "" || connectionID == "" {
		return
	}
	r.connOwner.Store(connectionID, userID)
	for {
		conns, _ := r.userConns.LoadOrStore(userID, newLockedSet[string]())
		if conns.(*lockedSet[string]).add(connectionID) {
			return
		}
		// Lost the race against the user's last disconnect: the set is
		// tombstoned. Unlink it and install a fresh one.
		r.userConns.CompareAndDelete(userID, conns)
	}
}

// RemoveConnection drops a connection. When it was the user's last live
// connection the user goes offline: every conversation and channel
// presence entry is removed through the reverse indices. Unknown
// connection ids are a no-op.
func (r *Registry) RemoveConnection(connectionID string) {
	owner, ok := r.connOwner.LoadAndDelete(connectionID)
	if !ok {
		return
	}
	userID := owner.(string)

	conns, ok := r.userConns.Load(userID)
	if !ok {
		return
	}
	if !conns.(*lockedSet[string]).remove(connectionID) {
		return
	}

	// Last connection gone: full cleanup. The connection set is now
	// tombstoned, so a concurrent AddConnection for the same user fails
	// against it and installs a fresh set instead of losing its insert.
	// CompareAndDelete only unlinks the tombstone, never a replacement.
	r.userConns.CompareAndDelete(userID, conns)
	r.conversations.dropUser(userID)
	r.channels.dropUser(userID)
	r.log.Debug("user offline, presence cleaned up", "user_id", userID)
}

// JoinConversation marks the connection's user as present in the
// conversation. Presence is tracked at user granularity, so a second
// device joining the same conversation has no observable effect.
func (r *Registry) JoinConversation(connectionID string, conversationID uuid.UUID) {
	if userID, ok := r.GetUserID(connectionID); ok {
		r.conversations.join(userID, conversationID)
	}
}

// LeaveConversation removes the connection's user from the conversation
// for all of the user's devices, regardless of how many other live
// connections the user still has. Explicit leave is a user-granularity
// intent; only disconnect cleanup counts connections.
func (r *Registry) LeaveConversation(connectionID string, conversationID uuid.UUID) {
	if userID, ok := r.GetUserID(connectionID); ok {
		r.conversations.leave(userID, conversationID)
	}
}

// JoinChannel is the channel analogue of JoinConversation.
func (r *Registry) JoinChannel(connectionID string, channelID uuid.UUID) {
	if userID, ok := r.GetUserID(connectionID); ok {
		r.channels.join(userID, channelID)
	}
}

// LeaveChannel is the channel analogue of LeaveConversation.
func (r *Registry) LeaveChannel(connectionID string, channelID uuid.UUID) {
	if userID, ok := r.GetUserID(connectionID); ok {
		r.channels.leave(userID, channelID)
	}
}

// GetUserID resolves a connection to its owning user.
func (r *Registry) GetUserID(connectionID string) (string, bool) {
	owner, ok := r.connOwner.Load(connectionID)
	if !ok {
		return "", false
	}
	return owner.(string), true
}

// GetUserConnections lists the user's live connection ids; empty for
// unknown users.
func (r *Registry) GetUserConnections(userID string) []string {
	conns, ok := r.userConns.Load(userID)
	if !ok {
		return nil
	}
	return conns.(*lockedSet[string]).snapshot()
}

// GetConversationUsers lists the users currently present in the
// conversation, at user granularity.
func (r *Registry) GetConversationUsers(conversationID uuid.UUID) []string {
	return r.conversations.usersOf(conversationID)
}

// GetChannelUsers lists the users currently present in the channel.
func (r *Registry) GetChannelUsers(channelID uuid.UUID) []string {
	return r.channels.usersOf(channelID)
}

// GetUserConversations lists the conversations the user is present in.
func (r *Registry) GetUserConversations(userID string) []uuid.UUID {
	return r.conversations.groupsOf(userID)
}

// GetUserChannels lists the channels the user is present in.
func (r *Registry) GetUserChannels(userID string) []uuid.UUID {
	return r.channels.groupsOf(userID)
}

// IsUserOnline reports whether the user holds at least one live
// connection.
func (r *Registry) IsUserOnline(userID string) bool {
	conns, ok := r.userConns.Load(userID)
	return ok && !conns.(*lockedSet[string]).empty()
}

func (g *groupIndex) join(userID string, groupID uuid.UUID) {
	for {
		users, _ := g.groupUsers.LoadOrStore(groupID, newLockedSet[string]())
		if users.(*lockedSet[string]).add(userID) {
			break
		}
		// The set was tombstoned by a concurrent last leave; unlink it
		// and retry against a fresh one.
		g.groupUsers.CompareAndDelete(groupID, users)
	}
	for {
		groups, _ := g.userGroups.LoadOrStore(userID, newLockedSet[uuid.UUID]())
		if groups.(*lockedSet[uuid.UUID]).add(groupID) {
			break
		}
		g.userGroups.CompareAndDelete(userID, groups)
	}
}

func (g *groupIndex) leave(userID string, groupID uuid.UUID) {
	// Drained sets are dropped so the map doesn't grow without bound.
	// remove tombstones the set before it is unlinked, so a racing join
	// can never land an insert in the doomed set; it retries instead.
	if users, ok := g.groupUsers.Load(groupID); ok {
		if users.(*lockedSet[string]).remove(userID) {
			g.groupUsers.CompareAndDelete(groupID, users)
		}
	}
	if groups, ok := g.userGroups.Load(userID); ok {
		if groups.(*lockedSet[uuid.UUID]).remove(groupID) {
			g.userGroups.CompareAndDelete(userID, groups)
		}
	}
}

// dropUser removes the user from every group it was present in, then
// discards the reverse index itself. The reverse index is tombstoned by
// drain, so a join racing the teardown installs a fresh index instead
// of writing into the one being discarded.
func (g *groupIndex) dropUser(userID string) {
	groups, ok := g.userGroups.LoadAndDelete(userID)
	if !ok {
		return
	}
	for _, groupID := range groups.(*lockedSet[uuid.UUID]).drain() {
		if users, ok := g.groupUsers.Load(groupID); ok {
			if users.(*lockedSet[string]).remove(userID) {
				g.groupUsers.CompareAndDelete(groupID, users)
			}
		}
	}
}

func (g *groupIndex) usersOf(groupID uuid.UUID) []string {
	users, ok := g.groupUsers.Load(groupID)
	if !ok {
		return nil
	}
	return users.(*lockedSet[string]).snapshot()
}

func (g *groupIndex) groupsOf(userID string) []uuid.UUID {
	groups, ok := g.userGroups.Load(userID)
	if !ok {
		return nil
	}
	return groups.(*lockedSet[uuid.UUID]).snapshot()
}
