package news

import (
	"log"

	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	images ImageStore
}

func NewService(repo Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images}
}

// Create stores a new article. The image is mandatory and is written to the
// image store before the record; a failed insert removes it again.
func (s *Service) Create(title, content, author, imageName string, imageData []byte) (*News, error) {
	if title == "" || content == "" || author == "" {
		return nil, ErrFieldsRequired
	}
	if len(imageData) == 0 {
		return nil, ErrImageRequired
	}

	url, storedName, err := s.images.Save(imageName, imageData)
	if err != nil {
		return nil, err
	}

	article := News{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Author:    author,
		Image:     url,
		ImageFile: storedName,
	}
	if err := s.repo.Save(article); err != nil {
		if cleanupErr := s.images.Delete(storedName); cleanupErr != nil {
			log.Printf("Error removing orphaned image %s: %v", storedName, cleanupErr)
		}
		return nil, err
	}
	return &article, nil
}

func (s *Service) GetByID(id string) (*News, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// Update replaces the provided fields. A new image supersedes the old one;
// failing to remove the old file is logged and does not abort the update.
func (s *Service) Update(id, title, content, author, imageName string, imageData []byte) (*News, error) {
	article, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		article.Title = title
	}
	if content != "" {
		article.Content = content
	}
	if author != "" {
		article.Author = author
	}

	if len(imageData) > 0 {
		oldImage := article.ImageFile
		url, storedName, err := s.images.Save(imageName, imageData)
		if err != nil {
			return nil, err
		}
		article.Image = url
		article.ImageFile = storedName

		if oldImage != "" {
			if err := s.images.Delete(oldImage); err != nil {
				log.Printf("Error deleting old image %s: %v", oldImage, err)
			}
		}
	}

	if err := s.repo.Update(*article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete removes the article and its image. A missing image file does not
// block the record deletion.
func (s *Service) Delete(id string) error {
	article, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if article.ImageFile != "" {
		if err := s.images.Delete(article.ImageFile); err != nil {
			log.Printf("Error deleting image %s: %v", article.ImageFile, err)
		}
	}
	return s.repo.Delete(id)
}

// List returns one page of articles newest first, with the total match count
// for pagination.
func (s *Service) List(titleFilter string, page, limit int) ([]News, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := s.repo.Count(titleFilter)
	if err != nil {
		return nil, 0, err
	}
	articles, err := s.repo.List(titleFilter, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	if articles == nil {
		articles = []News{}
	}
	return articles, total, nil
}
