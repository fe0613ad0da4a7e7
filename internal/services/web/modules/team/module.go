// Package team serves the team pages: every member card in roster order and
// a page per member.
package team

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/teamdocs/internal/platform/assets/imagecdn"
	platformotel "github.com/louisbranch/teamdocs/internal/platform/otel"
	"github.com/louisbranch/teamdocs/internal/services/shared/i18nhttp"
	"github.com/louisbranch/teamdocs/internal/services/shared/templates"
	"github.com/louisbranch/teamdocs/internal/services/team/storage"
	apperrors "github.com/louisbranch/teamdocs/internal/services/web/platform/errors"
	"github.com/louisbranch/teamdocs/internal/services/web/platform/httpx"
	"github.com/louisbranch/teamdocs/internal/services/web/platform/pagerender"
	"github.com/louisbranch/teamdocs/internal/services/web/platform/weberror"
	"github.com/louisbranch/teamdocs/internal/teamcard"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Route paths served by the module.
const (
	PathIndex        = "/team"
	PathMemberPrefix = "/team/"
)

// MemberReader is the storage surface the pages read from.
type MemberReader interface {
	ListMembers(ctx context.Context) ([]storage.Member, error)
	GetMember(ctx context.Context, slug string) (storage.Member, error)
}

// Module renders team pages.
type Module struct {
	members MemberReader
	cdn     imagecdn.CDN
	logger  *zap.Logger
	tracer  trace.Tracer
}

// New returns a team module reading from members.
func New(members MemberReader, cdn imagecdn.CDN, logger *zap.Logger) *Module {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Module{
		members: members,
		cdn:     cdn,
		logger:  logger,
		tracer:  platformotel.Tracer(),
	}
}

// Mount registers the team routes on mux.
func (m *Module) Mount(mux *http.ServeMux) {
	get := httpx.RequireMethod(http.MethodGet)
	mux.Handle(PathIndex, get(http.HandlerFunc(m.handleIndex)))
	mux.Handle(PathMemberPrefix+"{slug}", get(http.HandlerFunc(m.handleMember)))
}

func (m *Module) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := m.tracer.Start(r.Context(), "team.index")
	defer span.End()

	members, err := m.members.ListMembers(ctx)
	if err != nil {
		m.fail(w, r, span, err)
		return
	}
	span.SetAttributes(attribute.Int("team.members", len(members)))

	loc, tag := i18nhttp.ResolveLocalizer(w, r)
	kit := teamcard.NewKit(m.cdn, loc)
	err = pagerender.WriteModulePage(w, r.WithContext(ctx), pagerender.Locale{Loc: loc, Tag: tag}, pagerender.ModulePage{
		Title:    loc.Sprintf("team.page_title"),
		Intro:    loc.Sprintf("team.page_intro"),
		Fragment: memberList(members, kit, loc),
	})
	if err != nil {
		m.fail(w, r, span, err)
	}
}

func (m *Module) handleMember(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.PathValue("slug"))
	ctx, span := m.tracer.Start(r.Context(), "team.member", trace.WithAttributes(attribute.String("team.slug", slug)))
	defer span.End()

	member, err := m.members.GetMember(ctx, slug)
	if errors.Is(err, storage.ErrNotFound) {
		err = apperrors.Wrap(apperrors.KindNotFound, "core.error.not_found", err)
	}
	if err != nil {
		m.fail(w, r, span, err)
		return
	}

	loc, tag := i18nhttp.ResolveLocalizer(w, r)
	kit := teamcard.NewKit(m.cdn, loc)
	err = pagerender.WriteModulePage(w, r.WithContext(ctx), pagerender.Locale{Loc: loc, Tag: tag}, pagerender.ModulePage{
		Title:       member.Name,
		Breadcrumbs: templates.BuildTeamBreadcrumbs(r.URL.Path, loc, map[string]string{member.Slug: member.Name}),
		Fragment:    teamcard.Render(ToProfile(member), kit),
	})
	if err != nil {
		m.fail(w, r, span, err)
	}
}

func (m *Module) fail(w http.ResponseWriter, r *http.Request, span trace.Span, err error) {
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
		span.RecordError(err)
	}
	weberror.WriteModuleError(w, r, err, m.logger)
}

func memberList(members []storage.Member, kit teamcard.Kit, loc templates.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(members) == 0 {
			_, err := io.WriteString(w, `<p class="team-empty">`+templ.EscapeString(loc.Sprintf("team.empty"))+`</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<section class="team-list">`); err != nil {
			return err
		}
		for _, member := range members {
			if err := teamcard.Render(ToProfile(member), kit).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}
