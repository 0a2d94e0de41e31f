package contact

// Solution is one sales offering a visitor can ask about.
type Solution struct {
	Code  string
	Label string
	// Hint is extra text shown next to the label in the inquiry form only.
	Hint  string
	Group string
}

// OptionText is the text of the solution's form option.
func (s Solution) OptionText() string {
	if s.Hint == "" {
		return s.Label
	}
	return s.Label + " (" + s.Hint + ")"
}

const (
	GroupProducts = "개별 솔루션"
	GroupPackages = "패키지 & 맞춤 제작"
)

var solutions = []Solution{
	{Code: "blog-solution", Label: "네이버 블로그 솔루션 프로그램", Hint: "원고 편집기", Group: GroupProducts},
	{Code: "blogger-collector", Label: "네이버 블로거 수집기", Hint: "계정 수급", Group: GroupProducts},
	{Code: "cafe-posting", Label: "네이버 카페 포스팅 자동화", Group: GroupProducts},
	{Code: "package-all", Label: "올인원 패키지 (3개 전체)", Group: GroupPackages},
	{Code: "package-custom", Label: "2개 조합 패키지", Group: GroupPackages},
	{Code: "custom-new", Label: "맞춤 제작 - 새로운 자동화 개발", Group: GroupPackages},
	{Code: "custom-modify", Label: "맞춤 제작 - 기존 프로그램 커스터마이징", Group: GroupPackages},
	{Code: "other", Label: "기타 문의", Group: GroupPackages},
}

var solutionLabels = func() map[string]string {
	m := make(map[string]string, len(solutions))
	for _, s := range solutions {
		m[s.Code] = s.Label
	}
	return m
}()

// Solutions returns the catalog in display order. The slice is a copy.
func Solutions() []Solution {
	out := make([]Solution, len(solutions))
	copy(out, solutions)
	return out
}

// ResolveSolutionLabel returns the display label for code.
// Unknown codes are returned unchanged and are not an error.
func ResolveSolutionLabel(code string) string {
	if label, ok := solutionLabels[code]; ok {
		return label
	}
	return code
}
