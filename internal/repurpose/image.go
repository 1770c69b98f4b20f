package repurpose

import (
	"fmt"

	"github.com/yungbote/repurpose-backend/internal/clients/pollinations"
)

const (
	ImageTypeCover     = "image_cover"
	ImageTypeInstagram = "image_instagram"

	imageModel            = "flux"
	imagePromptShortRunes = 250
	imageSummaryRunes     = 400
)

// BuildImageSpec produces the single image record for a piece of content.
// No provider round-trip happens here; the prompt is assembled locally and
// the upstream URL embeds everything needed to re-render the exact image,
// seed included.
func (p *Pipeline) BuildImageSpec(title, contentText string, params ImageParams) ImageSpec {
	var width, height int
	var imageType, platform string
	if params.RequestedType == "instagram" {
		width, height = 1080, 1080
		imageType = ImageTypeInstagram
		platform = "instagram"
	} else {
		width, height = 1200, 630
		imageType = ImageTypeCover
		platform = "thumbnail"
	}

	prompt := BuildImagePrompt(title, summarize(contentText, imageSummaryRunes), platform, params.Style)
	// The upstream renderer takes the prompt in the URL path; keep it short.
	promptShort := truncateRunes(prompt, imagePromptShortRunes)

	seed := p.seed()
	upstreamURL := pollinations.BuildImageURL(promptShort, pollinations.URLParams{
		Width:  width,
		Height: height,
		Model:  imageModel,
		Seed:   seed,
	})

	return ImageSpec{
		Type:        imageType,
		UpstreamURL: upstreamURL,
		Width:       width,
		Height:      height,
		Style:       params.Style,
		Prompt:      prompt,
		PromptShort: promptShort,
		Model:       imageModel,
		Seed:        seed,
		AspectRatio: fmt.Sprintf("%d:%d", width, height),
	}
}
