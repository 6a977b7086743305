package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
)

func brandFlags(cmd *cobra.Command, brand *domain.BrandSpec) {
	cmd.Flags().StringVar(&brand.Brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&brand.Palette, "palette", "", "color palette")
	cmd.Flags().StringVar(&brand.Vibe, "vibe", "", "brand vibe")
	cmd.Flags().StringVar(&brand.CTAHint, "cta", "", "call to action hint")
	cmd.Flags().StringVar(&brand.Logo, "logo", "", "logo URL")
}

func (c *cli) adCmd() *cobra.Command {
	var request domain.AdRequest

	cmd := &cobra.Command{
		Use:   "ad",
		Short: "Generate a single ad for one platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			resp, err := c.services.generator.GenerateSingle(ctx, request)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&request.Platform, "platform", "", "target platform (instagram, linkedin, snapchat, pinterest, x)")
	cmd.Flags().StringVar(&request.Product, "product", "", "product description")
	brandFlags(cmd, &request.BrandSpec)

	return cmd
}

func (c *cli) kitCmd() *cobra.Command {
	var request domain.AdKitRequest

	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Generate one ad per platform concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			kit, err := c.services.generator.GenerateKit(ctx, request.Product, request.BrandSpec)
			if err != nil {
				if errors.Is(err, generating.ErrAllPlatformsFailed) {
					_ = printJSON(cmd.ErrOrStderr(), kit.Failures)
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.AdKitResponse{Ads: kit.Ads, Failures: kit.Failures})
		},
	}

	cmd.Flags().StringVar(&request.Product, "product", "", "product description")
	brandFlags(cmd, &request.BrandSpec)

	return cmd
}

func (c *cli) varyCmd() *cobra.Command {
	var request domain.VariationRequest

	cmd := &cobra.Command{
		Use:   "vary",
		Short: "Describe and render a stylistic variation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			resp, err := c.services.varier.Preview(ctx, request)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&request.Platform, "platform", "", "target platform")
	cmd.Flags().StringVar(&request.Product, "product", "", "product description")
	cmd.Flags().StringVar(&request.Style, "style", "", "variation style (default vibrant)")

	return cmd
}

func (c *cli) enhanceCmd() *cobra.Command {
	var request domain.EnhanceRequest

	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Restyle an existing image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			url, err := c.services.generator.Enhance(ctx, request.ImageURL, request.Style)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.EnhanceResponse{EnhancedURL: url})
		},
	}

	cmd.Flags().StringVar(&request.ImageURL, "image-url", "", "image to enhance")
	cmd.Flags().StringVar(&request.Style, "style", "", "lighting and aesthetic (default vibrant)")

	return cmd
}

func (c *cli) hashtagsCmd() *cobra.Command {
	var request domain.HashtagsRequest

	cmd := &cobra.Command{
		Use:   "hashtags",
		Short: "Suggest hashtags for a platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platform, err := domain.ParsePlatform(request.Platform)
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			hashtags, err := c.services.copywriter.Hashtags(ctx, platform, request.Product)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.HashtagsResponse{Hashtags: hashtags})
		},
	}

	cmd.Flags().StringVar(&request.Platform, "platform", "", "target platform")
	cmd.Flags().StringVar(&request.Product, "product", "", "product description")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func (c *cli) captionCmd() *cobra.Command {
	var request domain.CaptionRequest

	cmd := &cobra.Command{
		Use:   "caption",
		Short: "Write a short tagline-style caption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			caption, err := c.services.copywriter.Caption(ctx, request.Prompt)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.CaptionResponse{Caption: caption})
		},
	}

	cmd.Flags().StringVar(&request.Prompt, "prompt", "", "product described in free text")

	return cmd
}

func (c *cli) descriptionCmd() *cobra.Command {
	var request domain.DescriptionRequest

	cmd := &cobra.Command{
		Use:   "description",
		Short: "Write a long-form product description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platform, err := domain.ParsePlatform(request.Platform)
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			description, err := c.services.copywriter.Description(ctx, platform, request.Product)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.DescriptionResponse{Description: description})
		},
	}

	cmd.Flags().StringVar(&request.Platform, "platform", "", "target platform")
	cmd.Flags().StringVar(&request.Product, "product", "", "product description")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func (c *cli) brandCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Extract a brand style from a reference image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataURL, err := readDataURL(file)
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			resp, err := c.services.analyzer.AnalyzeStyle(ctx, domain.BrandStyleRequest{ImageBase64: dataURL})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the reference image")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// readDataURL lê a imagem do disco e a codifica como data URL base64
func readDataURL(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read brand image: %w", err)
	}

	mediaType := http.DetectContentType(raw)
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(raw)), nil
}
