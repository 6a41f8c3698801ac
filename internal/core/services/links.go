package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
	"github.com/custodia-labs/postnav/internal/hooks"
)

// RelLink renders a <link rel="prev|next"> element for the adjacent post.
// It returns "" when there is no current post or no adjacent post.
func (s *NavigationService) RelLink(
	ctx context.Context,
	view domain.View,
	dir domain.Direction,
	title string,
	opts domain.Options,
) (string, error) {
	post, err := s.linkTarget(ctx, view, dir, opts)
	if err != nil || post == nil {
		return "", err
	}
	return s.relLink(post, dir.Rel(), dir.LinkKind(), title), nil
}

// BoundaryRelLink renders a <link rel="start|end"> element.
func (s *NavigationService) BoundaryRelLink(
	ctx context.Context,
	view domain.View,
	b domain.Boundary,
	title string,
	opts domain.Options,
) (string, error) {
	post, err := s.BoundaryPost(ctx, view, opts, b)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoCurrentPost) {
			return "", nil
		}
		return "", err
	}
	return s.relLink(post, b.Rel(), b.LinkKind(), title), nil
}

// AnchorLink renders an <a rel="prev|next"> element placed into format.
// format defaults to "&laquo; %link" or "%link &raquo;", link to "%title".
func (s *NavigationService) AnchorLink(
	ctx context.Context,
	view domain.View,
	dir domain.Direction,
	format, link string,
	opts domain.Options,
) (string, error) {
	post, err := s.linkTarget(ctx, view, dir, opts)
	if err != nil || post == nil {
		return "", err
	}

	if format == "" {
		format = driving.DefaultNextFormat
		if dir == domain.Previous {
			format = driving.DefaultPreviousFormat
		}
	}
	if link == "" {
		link = driving.DefaultLinkTemplate
	}

	title := s.hooks.ApplyTitle(s.label(post, dir.LinkKind()), hooks.TitleContext{PostID: post.ID})

	link = strings.ReplaceAll(link, "%title", title)
	link = strings.ReplaceAll(link, "%date", s.formatDate(post))
	link = fmt.Sprintf(`<a href="%s" rel="%s">%s</a>`, s.permalinker.Permalink(post), dir.Rel(), link)

	out := strings.ReplaceAll(format, "%link", link)
	return s.hooks.ApplyAnchorLink(out, hooks.AnchorContext{Direction: dir, Link: link, Post: post}), nil
}

// WritePreviousRelLink writes the previous relational link.
func (s *NavigationService) WritePreviousRelLink(
	ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options,
) error {
	return s.writeRel(ctx, w, view, domain.Previous, title, opts)
}

// WriteNextRelLink writes the next relational link.
func (s *NavigationService) WriteNextRelLink(
	ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options,
) error {
	return s.writeRel(ctx, w, view, domain.Next, title, opts)
}

// WriteAdjacentRelLinks writes the previous then the next relational link,
// both honouring the same exclusions.
func (s *NavigationService) WriteAdjacentRelLinks(
	ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options,
) error {
	if err := s.writeRel(ctx, w, view, domain.Previous, title, opts); err != nil {
		return err
	}
	return s.writeRel(ctx, w, view, domain.Next, title, opts)
}

// WriteStartRelLink writes the first-post relational link.
func (s *NavigationService) WriteStartRelLink(
	ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options,
) error {
	link, err := s.BoundaryRelLink(ctx, view, domain.Start, title, opts)
	if err != nil {
		return err
	}
	return writeString(w, link)
}

// WriteEndRelLink writes the last-post relational link.
func (s *NavigationService) WriteEndRelLink(
	ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options,
) error {
	link, err := s.BoundaryRelLink(ctx, view, domain.End, title, opts)
	if err != nil {
		return err
	}
	return writeString(w, link)
}

// WritePreviousLink writes the previous anchor link.
func (s *NavigationService) WritePreviousLink(
	ctx context.Context, w io.Writer, view domain.View, format, link string, opts domain.Options,
) error {
	out, err := s.AnchorLink(ctx, view, domain.Previous, format, link, opts)
	if err != nil {
		return err
	}
	return writeString(w, out)
}

// WriteNextLink writes the next anchor link.
func (s *NavigationService) WriteNextLink(
	ctx context.Context, w io.Writer, view domain.View, format, link string, opts domain.Options,
) error {
	out, err := s.AnchorLink(ctx, view, domain.Next, format, link, opts)
	if err != nil {
		return err
	}
	return writeString(w, out)
}

func (s *NavigationService) writeRel(
	ctx context.Context, w io.Writer, view domain.View, dir domain.Direction, title string, opts domain.Options,
) error {
	link, err := s.RelLink(ctx, view, dir, title, opts)
	if err != nil {
		return err
	}
	return writeString(w, link)
}

// linkTarget finds the post a link points at. Previous links from an
// attachment point at its parent. A nil post with nil error means no link.
func (s *NavigationService) linkTarget(
	ctx context.Context,
	view domain.View,
	dir domain.Direction,
	opts domain.Options,
) (*domain.Post, error) {
	if view.Post == nil {
		return nil, nil
	}

	var (
		post *domain.Post
		err  error
	)
	if dir == domain.Previous && view.Post.IsAttachment() {
		post, err = s.content.GetPost(ctx, view.Post.ParentID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("loading parent of attachment %d: %w", view.Post.ID, err)
		}
	} else {
		post, err = s.AdjacentPost(ctx, view, opts, dir)
	}

	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return post, err
}

// relLink renders a <link> element with an attribute-escaped title.
func (s *NavigationService) relLink(post *domain.Post, rel string, kind domain.LinkKind, title string) string {
	if title == "" {
		title = driving.DefaultTitleTemplate
	}

	title = strings.ReplaceAll(title, "%title", s.label(post, kind))
	title = strings.ReplaceAll(title, "%date", s.formatDate(post))
	title = s.hooks.ApplyTitle(title, hooks.TitleContext{PostID: post.ID})

	link := fmt.Sprintf("<link rel='%s' title='%s' href='%s' />\n",
		rel, html.EscapeString(title), s.permalinker.Permalink(post))

	return s.hooks.ApplyRelLink(link, hooks.LinkContext{Kind: kind, Post: post})
}

// label returns the post title, or the translated default label when empty.
func (s *NavigationService) label(post *domain.Post, kind domain.LinkKind) string {
	if post.Title != "" {
		return post.Title
	}
	return s.translator.Translate(kind.DefaultLabel())
}

func (s *NavigationService) formatDate(post *domain.Post) string {
	layout := s.settings.DateLayout
	if layout == "" {
		layout = domain.DefaultDateLayout
	}
	return post.Date.Format(layout)
}

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
