package util

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// ErrUnsupportedFile is returned for file types ExtractText cannot read.
var ErrUnsupportedFile = errors.New("unsupported file type")

// SupportedTranscriptExtensions lists the upload types ExtractText accepts.
var SupportedTranscriptExtensions = []string{".pdf", ".docx", ".odt", ".rtf", ".txt"}

// ExtractText returns the plain text of a transcript file.
func ExtractText(path string, log *zap.Logger) (string, error) {
	var (
		text string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		text, err = ExtractPDFText(path, log)
	case ".docx", ".odt", ".rtf":
		var res *docconv.Response
		res, err = docconv.ConvertPath(path)
		if res != nil {
			text = res.Body
		}
	case ".txt":
		var b []byte
		b, err = os.ReadFile(path)
		text = string(b)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("no text found in file")
	}
	return text, nil
}

// ExtractPDFText reads the PDF text layer and falls back to OCR when the PDF
// has none, as with scanned documents.
func ExtractPDFText(path string, log *zap.Logger) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText bytes.Buffer
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to read text: %w", n+1, err)
		}
		if pageText = strings.TrimSpace(pageText); pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	if result := strings.TrimSpace(fullText.String()); result != "" {
		return result, nil
	}

	log.Info("PDF has no text layer, running OCR", zap.String("path", path), zap.Int("pages", doc.NumPage()))
	return ocrDocument(doc, log)
}

// ocrDocument renders every page and runs Tesseract on it.
func ocrDocument(doc *fitz.Document, log *zap.Logger) (string, error) {
	if err := checkTesseract(); err != nil {
		return "", fmt.Errorf("tesseract check failed: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	var fullText bytes.Buffer
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.Image(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract image: %w", n+1, err)
			log.Warn("OCR page skipped", zap.Error(lastErr))
			continue
		}

		pagePath := filepath.Join(tmpDir, fmt.Sprintf("page-%d.png", n+1))
		if err := savePNG(pagePath, img); err != nil {
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			log.Warn("OCR page skipped", zap.Error(lastErr))
			continue
		}

		out, err := exec.Command("tesseract", pagePath, "stdout", "-l", "eng").CombinedOutput()
		if err != nil {
			lastErr = fmt.Errorf("page %d: tesseract error: %w, output: %s", n+1, err, string(out))
			log.Warn("OCR page skipped", zap.Error(lastErr))
			continue
		}

		if pageText := strings.TrimSpace(string(out)); pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text via OCR: %w", lastErr)
		}
		return "", errors.New("no text extracted from PDF")
	}

	log.Debug("OCR finished", zap.Int("chars", len(result)))
	return result, nil
}

func checkTesseract() error {
	out, err := exec.Command("tesseract", "-v").CombinedOutput()
	if err != nil {
		return fmt.Errorf("tesseract not found or not executable: %w\nOutput: %s", err, string(out))
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
