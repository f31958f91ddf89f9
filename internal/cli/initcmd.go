package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-runcfg/pkg/model"
)

// NewInitCmd interactively builds a starter run configuration.
func NewInitCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a starter run configuration interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := promptConfig()
			if err != nil {
				return err
			}

			payload, err := model.Encode(cfg)
			if err != nil {
				return err
			}

			if output == "" {
				cmd.Print(string(payload))
				return nil
			}
			if err := os.WriteFile(output, payload, 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			cmd.Printf("configuration written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")

	return cmd
}

func promptConfig() (model.RunConfig, error) {
	var answers struct {
		Description   string
		Analysis      string
		GenomeBuild   string
		Aligner       string
		VariantCaller string
		Read1         string
		Read2         string
		Lane          string
		Batch         string
		UploadDir     string
		TmpDir        string
	}

	questions := []*survey.Question{
		{
			Name:     "description",
			Prompt:   &survey.Input{Message: "Sample description:"},
			Validate: survey.Required,
		},
		{
			Name: "analysis",
			Prompt: &survey.Select{
				Message: "Pipeline type:",
				Options: []string{"variant2", "variant", "RNA-seq", "smallRNA-seq", "chip-seq"},
				Default: "variant2",
			},
		},
		{
			Name:   "genomebuild",
			Prompt: &survey.Input{Message: "Genome build:", Default: "GRCh38"},
		},
		{
			Name: "aligner",
			Prompt: &survey.Select{
				Message: "Aligner:",
				Options: []string{"bwa", "bowtie2", "novoalign", "star", "hisat2"},
				Default: "bwa",
			},
		},
		{
			Name: "variantcaller",
			Prompt: &survey.Select{
				Message: "Variant caller:",
				Options: []string{"gatk-haplotype", "freebayes", "vardict", "mutect2"},
				Default: "gatk-haplotype",
			},
		},
		{
			Name:     "read1",
			Prompt:   &survey.Input{Message: "First read file:"},
			Validate: survey.Required,
		},
		{
			Name:   "read2",
			Prompt: &survey.Input{Message: "Second read file (empty for single-end):"},
		},
		{
			Name:     "lane",
			Prompt:   &survey.Input{Message: "Sequencing lane:", Default: "1"},
			Validate: validateLane,
		},
		{
			Name:   "batch",
			Prompt: &survey.Input{Message: "Batch label (optional):"},
		},
		{
			Name:   "uploaddir",
			Prompt: &survey.Input{Message: "Upload directory:", Default: "final"},
		},
		{
			Name:   "tmpdir",
			Prompt: &survey.Input{Message: "Scratch directory:", Default: "tmp"},
		},
	}

	if err := survey.Ask(questions, &answers); err != nil {
		return model.RunConfig{}, err
	}

	lane, err := strconv.Atoi(strings.TrimSpace(answers.Lane))
	if err != nil {
		return model.RunConfig{}, fmt.Errorf("invalid lane %q", answers.Lane)
	}

	files := []string{answers.Read1}
	if strings.TrimSpace(answers.Read2) != "" {
		files = append(files, answers.Read2)
	}

	return model.RunConfig{
		Upload:    model.Upload{Dir: answers.UploadDir},
		Resources: model.Resources{"tmp": {Dir: answers.TmpDir}},
		Details: []model.SampleEntry{{
			Analysis: answers.Analysis,
			Algorithm: model.Algorithm{
				Aligner:       answers.Aligner,
				VariantCaller: answers.VariantCaller,
			},
			Description: answers.Description,
			Metadata:    model.Metadata{Batch: answers.Batch},
			GenomeBuild: answers.GenomeBuild,
			Files:       files,
			Lane:        lane,
		}},
	}, nil
}

func validateLane(value any) error {
	text, ok := value.(string)
	if !ok {
		return fmt.Errorf("lane must be a number")
	}
	lane, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || lane < 0 {
		return fmt.Errorf("lane must be a non-negative integer")
	}
	return nil
}
