// Package config loads the YAML configuration of a compile run.
//
// Example:
//
//	input: download/kanji
//	output: ../app/src/main/res/raw/stroke_data.json
//	workers: 4
//	collect_all: true
//	ascii: true
//	indent: 2
//	log_level: debug
package config
