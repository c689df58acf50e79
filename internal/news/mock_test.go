package news

import (
	"sort"
	"strings"
	"time"
)

type mockRepository struct {
	articles map[string]News
	failErr  error
}

func newMockRepository() *mockRepository {
	return &mockRepository{articles: map[string]News{}}
}

func (m *mockRepository) Save(news News) error {
	if m.failErr != nil {
		return m.failErr
	}
	news.CreatedAt = time.Now()
	news.UpdatedAt = news.CreatedAt
	m.articles[news.ID] = news
	return nil
}

func (m *mockRepository) FindByID(id string) (*News, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	article, ok := m.articles[id]
	if !ok {
		return nil, nil
	}
	return &article, nil
}

func (m *mockRepository) Update(news News) error {
	if m.failErr != nil {
		return m.failErr
	}
	news.UpdatedAt = time.Now()
	m.articles[news.ID] = news
	return nil
}

func (m *mockRepository) Delete(id string) error {
	if m.failErr != nil {
		return m.failErr
	}
	delete(m.articles, id)
	return nil
}

func (m *mockRepository) matching(titleFilter string) []News {
	var matched []News
	for _, article := range m.articles {
		if titleFilter == "" || strings.Contains(strings.ToLower(article.Title), strings.ToLower(titleFilter)) {
			matched = append(matched, article)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

func (m *mockRepository) List(titleFilter string, limit, offset int) ([]News, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	matched := m.matching(titleFilter)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *mockRepository) Count(titleFilter string) (int, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	return len(m.matching(titleFilter)), nil
}

type mockImageStore struct {
	saved   map[string][]byte
	deleted []string
	failErr error
}

func newMockImageStore() *mockImageStore {
	return &mockImageStore{saved: map[string][]byte{}}
}

func (m *mockImageStore) Save(originalName string, data []byte) (string, string, error) {
	if m.failErr != nil {
		return "", "", m.failErr
	}
	storedName := "stored-" + originalName
	m.saved[storedName] = data
	return "/images/news/" + storedName, storedName, nil
}

func (m *mockImageStore) Delete(storedName string) error {
	m.deleted = append(m.deleted, storedName)
	delete(m.saved, storedName)
	return nil
}
