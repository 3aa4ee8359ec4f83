// Package conversation turns the account's received and sent history into
// one ordered timeline with a partner, and keeps the window and search
// state over it. Nothing here performs I/O.
package conversation

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophchat/internal/chatapi"
)

const (
	// PageSize is the initial window and the step of PageBack.
	PageSize = 20

	jumpBefore      = 10
	previewRunes    = 60
	previewEllipsis = "..."
)

// Entry is one rendered row of a conversation.
type Entry struct {
	ID             int64
	SenderID       int64
	SenderUsername string
	Mine           bool
	Body           string
	SentAt         time.Time
	IsRead         bool
	IsEdited       bool
}

// Decrypter opens one envelope. It must not fail; undecryptable envelopes
// come back as a placeholder string.
type Decrypter func(envelope string) string

// Assemble merges the messages exchanged with partner into ascending time
// order. Ties keep fetch order, received before sent.
func Assemble(received, sent []chatapi.Message, partner string, decrypt Decrypter) []Entry {
	entries := make([]Entry, 0, len(received)+len(sent))

	for _, m := range received {
		if strings.EqualFold(m.SenderUsername, partner) {
			entries = append(entries, toEntry(m, false, decrypt))
		}
	}
	for _, m := range sent {
		if strings.EqualFold(m.ReceiverUsername, partner) {
			entries = append(entries, toEntry(m, true, decrypt))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SentAt.Before(entries[j].SentAt)
	})
	return entries
}

func toEntry(m chatapi.Message, mine bool, decrypt Decrypter) Entry {
	return Entry{
		ID:             m.ID,
		SenderID:       m.SenderID,
		SenderUsername: m.SenderUsername,
		Mine:           mine,
		Body:           decrypt(m.EncryptedContent),
		SentAt:         m.SentAt,
		IsRead:         m.IsRead,
		IsEdited:       m.IsEdited,
	}
}

// SearchResult points at one matching entry.
type SearchResult struct {
	ID      int64
	Index   int
	Preview string
}

// View is the windowed state over an assembled conversation. The window is
// always the newest Offset entries.
type View struct {
	entries []Entry
	offset  int
}

func NewView(entries []Entry) *View {
	v := &View{entries: entries}
	v.Latest()
	return v
}

func (v *View) Total() int  { return len(v.entries) }
func (v *View) Offset() int { return v.offset }

// Replace swaps in a freshly assembled timeline. Entries that arrived since
// the last call widen the window so the rows already on screen stay.
func (v *View) Replace(entries []Entry) {
	grown := len(entries) - len(v.entries)
	v.entries = entries
	if grown > 0 {
		v.offset += grown
	}
	v.offset = min(v.offset, len(v.entries))
}

// PageBack extends the window by PageSize older entries.
func (v *View) PageBack() {
	v.offset = min(v.offset+PageSize, len(v.entries))
}

// Latest resets the window to the newest PageSize entries.
func (v *View) Latest() {
	v.offset = min(PageSize, len(v.entries))
}

// Window returns the visible entries, oldest first. The slice aliases the
// view's storage.
func (v *View) Window() []Entry {
	return v.entries[len(v.entries)-v.offset:]
}

// Search scans bodies for term, case-insensitively, oldest first.
func (v *View) Search(term string) []SearchResult {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}

	var results []SearchResult
	for i, e := range v.entries {
		if strings.Contains(strings.ToLower(e.Body), needle) {
			results = append(results, SearchResult{ID: e.ID, Index: i, Preview: preview(e.Body)})
		}
	}
	return results
}

func preview(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	if utf8.RuneCountInString(body) <= previewRunes {
		return body
	}
	return string([]rune(body)[:previewRunes]) + previewEllipsis
}

// JumpTo widens the window so that index is visible with up to ten older
// entries above it.
func (v *View) JumpTo(index int) {
	if index < 0 || index >= len(v.entries) {
		return
	}
	start := max(0, index-jumpBefore)
	v.offset = len(v.entries) - start
}

// UnreadFromPartner lists the ids of entries the partner sent that are
// still unread.
func UnreadFromPartner(entries []Entry) []int64 {
	var ids []int64
	for _, e := range entries {
		if !e.Mine && !e.IsRead {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Unread lists every unread partner entry in the timeline, inside the
// window or not.
func (v *View) Unread() []int64 {
	return UnreadFromPartner(v.entries)
}

// MarkRead records locally that ids were read.
func (v *View) MarkRead(ids ...int64) {
	if len(ids) == 0 {
		return
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	for i := range v.entries {
		if _, ok := set[v.entries[i].ID]; ok {
			v.entries[i].IsRead = true
		}
	}
}

// Index returns the position of id, or -1.
func (v *View) Index(id int64) int {
	for i, e := range v.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Entry returns the entry with id.
func (v *View) Entry(id int64) (Entry, bool) {
	if i := v.Index(id); i >= 0 {
		return v.entries[i], true
	}
	return Entry{}, false
}

// Clear drops every entry, including decrypted bodies.
func (v *View) Clear() {
	for i := range v.entries {
		v.entries[i] = Entry{}
	}
	v.entries = nil
	v.offset = 0
}
