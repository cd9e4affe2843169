package scrape_test

import (
	"context"
	"testing"

	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/goquery"
	"github.com/fwojciec/profscrape/mock"
)

const fullProfileHTML = `<!DOCTYPE html>
<html>
<body>
<nav>
	<a href="#skills">Skills</a>
	<a href="#recommendations">Recommendations</a>
</nav>
<main>
<section class="pv-top-card">
	<img class="pv-top-card-profile-picture__image" src="https://media.example.com/jane.jpg">
	<h1 class="text-heading-xlarge"> Jane Smith </h1>
	<div class="text-body-medium break-words">Product Manager | MBA | Tech Enthusiast</div>
	<span class="text-body-small inline t-black--light break-words">New York City</span>
	<ul class="pv-top-card--list"><li><span class="t-bold">500+ connections</span></li></ul>
	<div class="pvs-list__item--with-border"><span class="t-bold">2450 followers</span></div>
</section>
<section class="about">
	<div id="about"></div>
	<div></div>
	<div>
		<button class="inline-show-more-text__button">see more</button>
		<span class="visually-hidden">Product manager with a passion for user-centered solutions.</span>
	</div>
</section>
<section class="experience">
	<ul>
		<li class="artdeco-list__item pvs-list__item--line-separated">
			<div class="t-bold"><span>Senior Product Manager</span></div>
			<span class="t-normal"><span>Enterprise Solutions Inc.</span></span>
			<span class="t-normal t-black--light"><span>Mar 2021 - Present</span><span>New York, NY</span></span>
			<div class="pvs-list__outer-container">
				<ul><li class="pvs-list__item--line-separated"><span class="visually-hidden">Leading product strategy.</span></li></ul>
			</div>
		</li>
		<li class="artdeco-list__item pvs-list__item--line-separated">
			<div class="t-bold"><span>Freelance Consultant</span></div>
		</li>
		<li class="artdeco-list__item pvs-list__item--line-separated">
			<div class="t-bold"><span>Product Manager</span></div>
			<span class="t-normal"><span>Digital Products Co.</span></span>
		</li>
	</ul>
</section>
<section id="education-section">
	<ul>
		<li>
			<div class="t-bold"><span>Harvard Business School</span></div>
			<div class="t-normal"><span>Master of Business Administration</span><span>Business Administration</span></div>
			<div class="t-normal t-black--light"><span>2016 - 2018</span></div>
		</li>
		<li>
			<div class="t-normal"><span>Unnamed program</span></div>
		</li>
		<li>
			<div class="t-bold"><span>Cornell University</span></div>
		</li>
	</ul>
</section>
<section id="skills"></section>
<section>
	<div class="pvs-entity"><span class="pv-skill-category-entity__name-text">Product Strategy</span></div>
	<div class="pvs-entity"><span class="pv-skill-category-entity__name-text">User Research</span></div>
	<div class="pvs-entity"><span class="pv-skill-category-entity__name-text">Agile Methodologies</span></div>
</section>
<section id="recommendations"></section>
<section>
	<div class="pvs-entity">
		<div class="t-bold"><span>Robert Chen</span></div>
		<div class="t-normal"><span>CEO at Digital Products Co.</span></div>
		<div class="pvs-list__outer-container"><span class="visually-hidden">Jane combines analytical skills with customer empathy.</span></div>
	</div>
	<div class="pvs-entity">
		<div class="t-bold"><span>Nobody Wrote Anything</span></div>
	</div>
</section>
</main>
</body>
</html>`

const authWallHTML = `<!DOCTYPE html>
<html>
<body>
<section class="top-card-layout__card">
	<div class="profile-photo"><img src="https://media.example.com/jane-public.jpg"></div>
	<h1 class="top-card-layout__title">Jane Smith</h1>
	<h2 class="top-card-layout__headline">Product Manager</h2>
	<div class="top-card__subline-item">New York City</div>
</section>
<ul>
	<li class="artdeco-list__item pvs-list__item--line-separated">
		<div class="t-bold"><span>Senior Product Manager</span></div>
		<span class="t-normal"><span>Enterprise Solutions Inc.</span></span>
	</li>
</ul>
<a href="#skills">Skills</a>
<div class="pvs-entity"></div>
</body>
</html>`

// staticPage returns a page that resolves any navigation to finalURL
// serving html.
func staticPage(t *testing.T, finalURL, html string) profscrape.Page {
	t.Helper()
	return goquery.NewPage(&mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (*profscrape.Snapshot, error) {
			return &profscrape.Snapshot{URL: finalURL, HTML: html}, nil
		},
	})
}

func ptr[T any](v T) *T {
	return &v
}
