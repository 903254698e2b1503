// Package cache reads card detail fragments that were already downloaded
// into a directory tree. It maps card numbers to cache paths and parses
// card detail URLs; it never fetches anything itself.
package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"
)

// DetailAction is the value of the "card" query parameter on detail pages.
const DetailAction = "card_detail"

var (
	ErrBadCardNo = errors.New("malformed card number")
	ErrNotDetail = errors.New("not a card detail url")
	ErrNotCached = errors.New("card not in cache")
)

// CardQuery identifies one card detail page.
type CardQuery struct {
	Card   string // page action, normally DetailAction
	CardNo string
}

// FromCardNo returns the detail query for a card number.
func FromCardNo(no string) CardQuery {
	return CardQuery{Card: DetailAction, CardNo: strings.TrimSpace(no)}
}

// RelativePath returns the cache location of the card: the number's last
// dash-separated token is the file, the rest is the directory.
// "WXDi-P14-061" maps to "WXDi-P14/061.html".
func (q CardQuery) RelativePath() (string, error) {
	i := strings.LastIndex(q.CardNo, "-")
	if i <= 0 || i == len(q.CardNo)-1 || strings.ContainsAny(q.CardNo, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadCardNo, q.CardNo)
	}
	return q.CardNo[:i] + "/" + q.CardNo[i+1:] + ".html", nil
}

// Values returns the query as form values, as posted to the card list.
func (q CardQuery) Values() url.Values {
	return url.Values{"card": {q.Card}, "card_no": {q.CardNo}}
}

// ParseCardURL reads the card number out of a detail page URL such as
// https://www.takaratomy.co.jp/products/wixoss/card_list.php?card=card_detail&card_no=WXDi-P14-061
func ParseCardURL(raw string) (CardQuery, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return CardQuery{}, fmt.Errorf("parse card url: %w", err)
	}
	q := u.Query()
	no := q.Get("card_no")
	if no == "" {
		return CardQuery{}, fmt.Errorf("%w: %s", ErrNotDetail, raw)
	}
	return CardQuery{Card: q.Get("card"), CardNo: no}, nil
}

// Resolve accepts either a bare card number or a detail URL.
func Resolve(ref string) (CardQuery, error) {
	if strings.Contains(ref, "://") || strings.Contains(ref, "?") {
		return ParseCardURL(ref)
	}
	return FromCardNo(ref), nil
}

// Dir is a read-only view of a cache directory.
type Dir struct {
	fsys fs.FS
	root string
}

// NewDir opens the cache rooted at root.
func NewDir(root string) *Dir {
	return &Dir{fsys: os.DirFS(root), root: root}
}

// NewDirFS wraps an arbitrary file system, mostly for tests.
func NewDirFS(fsys fs.FS) *Dir {
	return &Dir{fsys: fsys}
}

// Root returns the directory the cache was opened on.
func (d *Dir) Root() string {
	return d.root
}

// Get returns the cached fragment of the card.
func (d *Dir) Get(no string) (string, error) {
	rel, err := FromCardNo(no).RelativePath()
	if err != nil {
		return "", err
	}
	data, err := fs.ReadFile(d.fsys, rel)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotCached, no)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	return string(data), nil
}

// Entry is one cached card file.
type Entry struct {
	CardNo string
	Path   string // relative to the cache root
}

// List returns every cached card, sorted by card number. Files outside the
// "<set>/<id>.html" layout are reported through skip and left out.
func (d *Dir) List(skip func(path, reason string)) ([]Entry, error) {
	var out []Entry
	err := fs.WalkDir(d.fsys, ".", func(p string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() {
			return nil
		}
		no, ok := cardNoFromPath(p)
		if !ok {
			if skip != nil {
				skip(p, "not a cached card path")
			}
			return nil
		}
		out = append(out, Entry{CardNo: no, Path: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk cache: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardNo < out[j].CardNo })
	return out, nil
}

// Read returns the contents of a listed entry.
func (d *Dir) Read(e Entry) (string, error) {
	data, err := fs.ReadFile(d.fsys, e.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", e.Path, err)
	}
	return string(data), nil
}

func cardNoFromPath(p string) (string, bool) {
	if path.Ext(p) != ".html" {
		return "", false
	}
	dir, file := path.Split(p)
	dir = strings.TrimSuffix(dir, "/")
	id := strings.TrimSuffix(file, ".html")
	if dir == "" || id == "" || strings.Contains(dir, "/") {
		return "", false
	}
	return dir + "-" + id, true
}
