package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	avatarSize    = 256
	avatarQuality = 85
)

type S3Config struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
	BaseURL   string
}

// AvatarStore normaliza avatares de barbeiro (quadrado 256px, webp)
// e publica no S3.
type AvatarStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewAvatarStore(cfg S3Config) *AvatarStore {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}

	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &AvatarStore{
		client:  s3.New(opts),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// UploadAvatar decodifica a imagem enviada (jpeg/png), redimensiona
// para o quadrado padrão, reencoda como webp e grava no bucket.
// Devolve a URL pública do objeto.
func (s *AvatarStore) UploadAvatar(
	ctx context.Context,
	barberID string,
	r io.Reader,
) (string, error) {

	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("imagem inválida: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: avatarQuality}); err != nil {
		return "", fmt.Errorf("falha ao converter para webp: %w", err)
	}

	key := fmt.Sprintf("avatars/%s.webp", barberID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("falha ao enviar avatar: %w", err)
	}

	return s.baseURL + "/" + key, nil
}
