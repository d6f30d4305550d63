package sitegen

// Config holds runtime knobs for the generator service.
type Config struct {
	DefaultTemplate TemplateID
	MaxPromptLength int
	PublishEnabled  bool
	PublishPrefix   string
}
