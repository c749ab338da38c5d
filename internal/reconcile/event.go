package reconcile

import (
	"strings"
	"time"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/ledger"
	"github.com/mediareap/mediareap/internal/pathmap"
)

// embyTimeLayout is the timestamp format Emby writes to its server log and
// webhook payloads.
const embyTimeLayout = "2006-01-02 15:04:05.000"

// Event is one normalized deletion, immutable and consumed once. Path is the
// canonicalized destination path used as the ledger join key; Time is zero
// when the notification carried no usable timestamp.
type Event struct {
	Kind    ledger.MediaKind
	Name    string
	RawPath string
	Path    string
	TmdbID  int
	Season  *int
	Episode *int
	Time    time.Time
	Origin  string
}

// NoticeFromWebhook converts an Emby/Jellyfin webhook payload into a deletion
// notice. Payloads whose event discriminator is not library.deleted are
// dropped (ok == false), which is a no-op, not an error.
func NoticeFromWebhook(p apitypes.WebhookPayload, origin string) (apitypes.DeletionNotice, bool) {
	if p.Event != "library.deleted" {
		return apitypes.DeletionNotice{}, false
	}

	return apitypes.DeletionNotice{
		MediaType: mediaType(p.ItemType),
		Name:      p.ItemName,
		Path:      p.ItemPath,
		TmdbID:    p.TmdbID,
		Season:    p.SeasonID,
		Episode:   p.EpisodeID,
		Time:      parseTimestamp(p.UtcDate),
		Origin:    origin,
	}, true
}

// NoticeFromAction converts a generic plugin-to-plugin action payload into a
// deletion notice. Actions other than media.deleted are dropped.
func NoticeFromAction(p apitypes.ActionPayload, origin string) (apitypes.DeletionNotice, bool) {
	if p.Action != "media.deleted" {
		return apitypes.DeletionNotice{}, false
	}

	return apitypes.DeletionNotice{
		MediaType: mediaType(p.MediaType),
		Name:      p.MediaName,
		Path:      p.MediaPath,
		TmdbID:    p.TmdbID,
		Season:    p.Season,
		Episode:   p.Episode,
		Time:      parseTimestamp(p.Timestamp),
		Origin:    origin,
	}, true
}

// EventFromNotice canonicalizes a notice's path against the mapping rules and
// produces the immutable event the reconciler consumes.
func EventFromNotice(n apitypes.DeletionNotice, rules []pathmap.Rule) Event {
	kind := ledger.KindSeries
	if n.MediaType == string(ledger.KindMovie) {
		kind = ledger.KindMovie
	}

	return Event{
		Kind:    kind,
		Name:    n.Name,
		RawPath: n.Path,
		Path:    pathmap.Translate(n.Path, rules),
		TmdbID:  int(n.TmdbID),
		Season:  n.Season,
		Episode: n.Episode,
		Time:    n.Time,
		Origin:  n.Origin,
	}
}

// mediaType collapses the item-type vocabulary of the two payload shapes onto
// the ledger's two kinds. Series, seasons and episodes all resolve against
// series rows; only an explicit movie marker maps to the movie kind.
func mediaType(itemType string) string {
	switch strings.ToLower(itemType) {
	case "movie", "movies":
		return string(ledger.KindMovie)
	default:
		return string(ledger.KindSeries)
	}
}

// parseTimestamp parses the heterogeneous timestamp strings notifications
// carry. An unparseable timestamp yields the zero time, which disables the
// re-transfer guard for that event; the guard is a heuristic and fails open.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range []string{embyTimeLayout, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
