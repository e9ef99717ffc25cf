package clipper

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"weeks-worth/internal/llm"
	"weeks-worth/internal/recipe"
	"weeks-worth/internal/shared"
)

//go:embed prompt.tmpl
var promptText string

var promptTemplate = template.Must(template.New("extract").Parse(promptText))

// maxContentChars bounds the page text sent to the model.
const maxContentChars = 20000

// RecipeStore is the part of the recipe repository the clipper needs.
type RecipeStore interface {
	Create(ctx context.Context, in recipe.CreateInput) (*recipe.Recipe, error)
	URLs(ctx context.Context) ([]string, error)
}

// Clipper imports recipes from web pages.
type Clipper struct {
	store      RecipeStore
	textGen    llm.TextGenerator
	httpClient *http.Client
	logger     *zap.Logger
}

// ExtractedRecipe represents the data structured by the AI.
type ExtractedRecipe struct {
	Name        string              `json:"name"`
	Ingredients []shared.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
}

type page struct {
	URL   string
	Title string
	Image string
	Text  string
}

// NewClipper creates a new Clipper instance.
func NewClipper(store RecipeStore, textGen llm.TextGenerator, logger *zap.Logger) *Clipper {
	return &Clipper{
		store:      store,
		textGen:    textGen,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// ImportURL fetches the page, extracts the recipe with the text generator
// and saves it with its source URL. Steps are stored unnumbered so the
// repository assigns their order.
func (c *Clipper) ImportURL(ctx context.Context, rawURL string) (*recipe.Recipe, error) {
	target, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	known, err := c.store.URLs(ctx)
	if err != nil {
		return nil, err
	}
	if slices.Contains(known, target) {
		return nil, recipe.ErrDuplicateURL
	}

	// 1. Fetch and Clean HTML
	p, err := c.fetchPage(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	// 2. Extract Data via the text generator
	extracted, err := c.extract(ctx, p)
	if err != nil {
		return nil, err
	}

	// 3. Save
	in := c.toCreateInput(extracted, p)
	rec, err := c.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	c.logger.Info("imported recipe",
		zap.String("url", target),
		zap.String("name", rec.Name),
		zap.Int("ingredients", len(rec.Ingredients)),
		zap.Int("steps", len(rec.Steps)),
	)
	return rec, nil
}

func validateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an http(s) URL", shared.ErrValidation, rawURL)
	}
	return rawURL, nil
}

func (c *Clipper) fetchPage(ctx context.Context, target string) (page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return page{}, err
	}
	req.Header.Set("User-Agent", "weeks-worth-clipper/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return page{}, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return page{}, err
	}

	p := page{URL: target}
	p.Title = strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	if p.Title == "" {
		p.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	p.Image = strings.TrimSpace(doc.Find(`meta[property="og:image"]`).AttrOr("content", ""))

	// Remove noise to save LLM tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	p.Text = truncate(strings.Join(strings.Fields(doc.Find("body").Text()), " "), maxContentChars)
	return p, nil
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func (c *Clipper) extract(ctx context.Context, p page) (ExtractedRecipe, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, p); err != nil {
		return ExtractedRecipe{}, fmt.Errorf("failed to build prompt: %w", err)
	}

	llmResponse, err := c.textGen.GenerateContent(ctx, buf.String())
	if err != nil {
		return ExtractedRecipe{}, fmt.Errorf("ai extraction failed: %w", err)
	}

	var extracted ExtractedRecipe
	if err := json.Unmarshal([]byte(stripCodeFence(llmResponse)), &extracted); err != nil {
		return ExtractedRecipe{}, fmt.Errorf("failed to parse AI response: %w", err)
	}
	return extracted, nil
}

// stripCodeFence removes a ```json fence some models wrap around JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func (c *Clipper) toCreateInput(r ExtractedRecipe, p page) recipe.CreateInput {
	in := recipe.CreateInput{
		Name: strings.TrimSpace(r.Name),
		URL:  p.URL,
	}
	if in.Name == "" {
		in.Name = p.Title
	}
	if len(p.Image) <= 254 {
		in.Photo = p.Image
	}

	for _, ing := range r.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		if err := ing.Validate(); err != nil {
			c.logger.Warn("skipping extracted ingredient", zap.String("name", ing.Name), zap.Error(err))
			continue
		}
		if len(in.Ingredients) == recipe.MaxIngredients {
			c.logger.Warn("recipe has too many ingredients, truncating", zap.String("url", p.URL))
			break
		}
		in.Ingredients = append(in.Ingredients, ing)
	}

	for _, step := range r.Steps {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		if len(in.Steps) == recipe.MaxSteps {
			c.logger.Warn("recipe has too many steps, truncating", zap.String("url", p.URL))
			break
		}
		in.Steps = append(in.Steps, recipe.StepInput{Step: step})
	}
	return in
}
