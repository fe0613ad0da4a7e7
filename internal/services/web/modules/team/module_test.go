package team

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/louisbranch/teamdocs/internal/platform/assets/imagecdn"
	"github.com/louisbranch/teamdocs/internal/services/team/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeMembers struct {
	members []storage.Member
	err     error
}

func (f fakeMembers) ListMembers(context.Context) ([]storage.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

func (f fakeMembers) GetMember(_ context.Context, slug string) (storage.Member, error) {
	if f.err != nil {
		return storage.Member{}, f.err
	}
	for _, member := range f.members {
		if member.Slug == slug {
			return member, nil
		}
	}
	return storage.Member{}, storage.ErrNotFound
}

func sampleMembers() []storage.Member {
	return []storage.Member{
		{
			Slug:      "gaearon",
			Name:      "Dan Abramov",
			Title:     "Independent Engineer",
			Photo:     "team/gaearon",
			Biography: "Dan got into programming.\n\nHe writes <blog> posts.",
			GitHub:    "gaearon",
			Translations: []storage.Translation{
				{Title: "Guide", TranslatedTitle: "Guía", URL: "/es/guide"},
			},
		},
		{
			Slug:      "rickhanlonii",
			Name:      "Ricky Hanlon",
			Title:     "Engineer at Meta",
			Photo:     "/images/team/rickhanlonii.jpg",
			Biography: "Ricky majored in math.",
			Twitter:   "rickhanlonii",
		},
	}
}

func serve(t *testing.T, members MemberReader, logger *zap.Logger, req *http.Request) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	mux := http.NewServeMux()
	New(members, imagecdn.New("https://res.cloudinary.com/demo/image/upload"), logger).Mount(mux)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse body: %v", err)
	}
	return rr, doc
}

func TestIndexRendersCardsInOrder(t *testing.T) {
	rr, doc := serve(t, fakeMembers{members: sampleMembers()}, nil, httptest.NewRequest(http.MethodGet, "/team", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var names []string
	doc.Find(".team-list h3").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		names = append(names, id)
	})
	if strings.Join(names, ",") != "Dan Abramov,Ricky Hanlon" {
		t.Fatalf("cards = %v", names)
	}
	if got := doc.Find("title").Text(); !strings.HasPrefix(got, "Meet the Team") {
		t.Fatalf("title = %q", got)
	}
	if src, _ := doc.Find("[data-placement=wide] img").First().Attr("src"); !strings.HasPrefix(src, "https://res.cloudinary.com/demo/image/upload/") {
		t.Fatalf("cdn photo src = %q", src)
	}
	if src, _ := doc.Find("[data-placement=wide] img").Last().Attr("src"); src != "/images/team/rickhanlonii.jpg" {
		t.Fatalf("local photo src = %q", src)
	}
}

func TestIndexRendersEmptyState(t *testing.T) {
	rr, doc := serve(t, fakeMembers{}, nil, httptest.NewRequest(http.MethodGet, "/team", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := doc.Find(".team-empty").Text(); got != "No team members have been published yet." {
		t.Fatalf("empty state = %q", got)
	}
}

func TestIndexLocalizesByQuery(t *testing.T) {
	rr, doc := serve(t, fakeMembers{members: sampleMembers()}, nil, httptest.NewRequest(http.MethodGet, "/team?lang=ko-KR", nil))

	if got := doc.Find("details summary").First().Text(); !strings.Contains(got, "번역한 페이지") || !strings.Contains(got, "(1)") {
		t.Fatalf("summary = %q", got)
	}
	if label, _ := doc.Find("[data-badge=github] a").Attr("aria-label"); label != "Dan Abramov의 GitHub" {
		t.Fatalf("aria-label = %q", label)
	}
	if len(rr.Result().Cookies()) != 1 {
		t.Fatal("expected language cookie")
	}
}

func TestIndexStorageFailureRendersErrorPage(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	rr, doc := serve(t, fakeMembers{err: errors.New("disk I/O error")}, zap.New(core), httptest.NewRequest(http.MethodGet, "/team", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if doc.Find(".error-state").Length() != 1 {
		t.Fatalf("expected error page, got %q", rr.Body.String())
	}
	if logs.Len() != 1 {
		t.Fatalf("error logs = %d, want 1", logs.Len())
	}
}

func TestIndexInvalidMemberFailsWholePage(t *testing.T) {
	members := sampleMembers()
	members[1].Biography = ""
	rr, doc := serve(t, fakeMembers{members: members}, nil, httptest.NewRequest(http.MethodGet, "/team", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if doc.Find(".team-list").Length() != 0 {
		t.Fatal("partial team list leaked into error response")
	}
}

func TestMemberPage(t *testing.T) {
	rr, doc := serve(t, fakeMembers{members: sampleMembers()}, nil, httptest.NewRequest(http.MethodGet, "/team/gaearon", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if doc.Find("h3").Length() != 1 {
		t.Fatalf("headings = %d, want 1", doc.Find("h3").Length())
	}
	if href, _ := doc.Find("[data-badge=github] a").Attr("href"); href != "https://github.com/gaearon" {
		t.Fatalf("github href = %q", href)
	}
	if got := doc.Find("details li a").Text(); got != "Guía" {
		t.Fatalf("translation link = %q", got)
	}
	if got := doc.Find(`nav.breadcrumbs li[aria-current="page"]`).Text(); got != "Dan Abramov" {
		t.Fatalf("breadcrumb = %q", got)
	}
	paragraphs := doc.Find("main p").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "Dan got") || strings.Contains(s.Text(), "<blog>")
	})
	if paragraphs.Length() != 2 {
		t.Fatalf("biography paragraphs = %d, want 2", paragraphs.Length())
	}
}

func TestMemberPageNotFound(t *testing.T) {
	rr, doc := serve(t, fakeMembers{members: sampleMembers()}, nil, httptest.NewRequest(http.MethodGet, "/team/nobody", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if doc.Find(".error-state").Length() != 1 {
		t.Fatalf("expected not found page, got %q", rr.Body.String())
	}
}

func TestRoutesRejectNonGet(t *testing.T) {
	for _, path := range []string{"/team", "/team/gaearon"} {
		rr, _ := serve(t, fakeMembers{members: sampleMembers()}, nil, httptest.NewRequest(http.MethodPost, path, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("POST %s status = %d, want %d", path, rr.Code, http.StatusMethodNotAllowed)
		}
	}
}
