package domain

import "designarena/internal/lottie"

// VisualAsset is a composed still image carried inline as a data URL.
type VisualAsset struct {
	ID         string     `json:"id"`
	Filename   string     `json:"filename"`
	DesignType DesignType `json:"design_type"`
	Width      int        `json:"width" validate:"gte=0"`
	Height     int        `json:"height" validate:"gte=0"`
	DataURL    string     `json:"dataUrl"`
}

// MotionAsset wraps a synthesized animation document.
type MotionAsset struct {
	ID        string           `json:"id"`
	Filename  string           `json:"filename"`
	Animation lottie.Animation `json:"lottieJson"`
}
