package options

import "github.com/spf13/cobra"

// ReflectOptions holds pre-filled answers for the reflection steps. Any
// step left blank is asked interactively.
type ReflectOptions struct {
	Fact     string
	Emotion  string
	Learning string
	NextStep string
	Edit     bool
}

func AddReflectArgs(cmd *cobra.Command, o *ReflectOptions) {
	cmd.Flags().StringVar(&o.Fact, "fact", "", "What happened.")
	cmd.Flags().StringVar(&o.Emotion, "emotion", "", "How it felt.")
	cmd.Flags().StringVar(&o.Learning, "learning", "", "What was learned.")
	cmd.Flags().StringVar(&o.NextStep, "next", "", "What comes next.")
	cmd.Flags().BoolVarP(&o.Edit, "edit", "e", false,
		"Revise the reflection already saved on the task.")
}
