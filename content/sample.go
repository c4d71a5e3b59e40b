package content

// Samples is a fixed, in-memory set of posts used when no content directory
// is available.
type Samples struct {
	posts []Post
}

// NewSamples returns the built-in sample posts.
func NewSamples() *Samples {
	posts := samplePosts()
	for i := range posts {
		posts[i].ReadTime = ReadTime(posts[i].Content)
		if posts[i].Author == "" {
			posts[i].Author = DefaultAuthor
		}
	}
	SortByDate(posts)
	return &Samples{posts: posts}
}

// ListPosts returns copies of the sample posts, newest first.
func (s *Samples) ListPosts() []Post {
	out := make([]Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = clonePost(p)
	}
	return out
}

func (s *Samples) GetPost(slug string) (Post, bool) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return clonePost(p), true
		}
	}
	return Post{}, false
}

func (s *Samples) ListSlugs() []string {
	return slugsOf(s.posts)
}

func clonePost(p Post) Post {
	p.Tags = append([]string{}, p.Tags...)
	return p
}

func samplePosts() []Post {
	return []Post{
		{
			Slug:    "getting-started-with-nextjs-15",
			Title:   "Getting Started with Next.js 15",
			Date:    "2025-01-15",
			Excerpt: "A practical tour of the App Router, server components and the new caching defaults in Next.js 15.",
			Author:  "Priya Sharma",
			Tags:    []string{"NextJS", "React", "Web Development"},
			Content: `# Getting Started with Next.js 15

Next.js 15 makes the **App Router** the default way to build React
applications, and it changes a few long-standing defaults along the way.

## Creating a project

Run the installer and pick the defaults:

` + "```bash\nnpx create-next-app@latest my-app\n```" + `

## Server components

Every component under ` + "`app/`" + ` is a server component unless it opts out
with ` + "`'use client'`" + `. Fetch data directly inside the component and let
the framework stream the result.

## Caching

Fetch requests are no longer cached by default. Opt in per request when the
data is static.

> Start small: one route, one layout, one data source.
`,
		},
		{
			Slug:    "modern-css-layouts",
			Title:   "Modern CSS Layouts with Grid and Flexbox",
			Date:    "2025-01-08",
			Excerpt: "When to reach for Grid, when Flexbox is enough, and how container queries change responsive design.",
			Author:  "Arjun Mehta",
			Tags:    []string{"CSS", "Design", "Frontend"},
			Content: `# Modern CSS Layouts

Grid handles two dimensions, Flexbox handles one. Most layouts need both.

## Grid for page structure

Use ` + "`grid-template-areas`" + ` to name regions and rearrange them per
breakpoint without touching markup.

## Flexbox for components

Navigation bars, button groups and card footers are one-dimensional and
read naturally as flex rows.

## Container queries

Components can now respond to the width of their container rather than the
viewport, which makes them portable across layouts.
`,
		},
		{
			Slug:    "design-systems-that-scale",
			Title:   "Design Systems That Scale",
			Date:    "2024-12-20",
			Excerpt: "Tokens, components and documentation: building a design system a whole team can use.",
			Author:  "Neha Gupta",
			Tags:    []string{"Design", "CSS", "UI/UX"},
			Content: `# Design Systems That Scale

A design system is a product with its own users: the designers and engineers
who build on it.

- Start with **tokens** for color, spacing and type.
- Build a small set of components and document every state.
- Version the system and publish a changelog.

Consistency comes from making the right thing the easy thing.
`,
		},
		{
			Slug:    "building-rest-apis-with-go",
			Title:   "Building REST APIs with Go",
			Date:    "2024-12-02",
			Excerpt: "Routing, middleware and error handling for a small but production-ready HTTP service in Go.",
			Author:  "Rahul Verma",
			Tags:    []string{"Go", "Backend", "API"},
			Content: `# Building REST APIs with Go

Go's standard library ships an HTTP server that is ready for production, and
a router such as Echo adds path parameters and middleware on top.

## Handlers return errors

Let handlers return ` + "`error`" + ` and convert them to responses in one
central error handler.

## Middleware

Logging, recovery, request ids and compression belong in middleware, not in
every handler.
`,
		},
		{
			Slug:    "machine-learning-project-showcase",
			Title:   "Project Showcase: Image Classifier for Plant Diseases",
			Date:    "2024-11-18",
			Excerpt: "How a student team trained and shipped a plant disease classifier that runs on a phone.",
			Author:  "Kavya Iyer",
			Tags:    []string{"Machine Learning", "Python", "Project"},
			Content: `# Image Classifier for Plant Diseases

The team fine-tuned a small convolutional network on thirty thousand leaf
images and exported it for on-device inference.

1. Collect and label the data.
2. Fine-tune a pretrained backbone.
3. Quantize the model for mobile.

Accuracy on the held-out set reached 94 percent.
`,
		},
		{
			Slug:    "data-structures-interview-guide",
			Title:   "Data Structures: An Interview Preparation Guide",
			Date:    "2024-10-30",
			Excerpt: "The handful of data structures that cover most interview questions, with the trade-offs worth knowing.",
			Tags:    []string{"DSA", "Interview", "Algorithms"},
			Content: `# Data Structures for Interviews

Arrays, hash maps, stacks, queues, trees and graphs cover most questions.

| Structure | Lookup | Insert |
|-----------|--------|--------|
| Array     | O(1)   | O(n)   |
| Hash map  | O(1)   | O(1)   |
| BST       | O(log n) | O(log n) |

Practice explaining the trade-off before writing any code.
`,
		},
	}
}
