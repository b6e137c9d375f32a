package domain

const (
	SetLanguageCallbackPrefix = "lang_"
	GenImageCallbackPrefix    = "gen_image_"
)
